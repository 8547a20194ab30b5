package domain

import "fmt"

// Rect is a vertical frame in a coordinate space shared by the viewport and
// the scrollable content. Top grows downwards.
type Rect struct {
	Top    float64
	Height float64
}

// ScrollSample is one normalized reading of the list's scroll position
type ScrollSample struct {
	Offset            float64 // positive once content has scrolled up past the viewport top
	OffsetToBottom    float64
	ScrollableContent float64
}

// DirectionKind tags a Direction
type DirectionKind int

const (
	Insignificant DirectionKind = iota
	Up
	Down
)

func (k DirectionKind) String() string {
	switch k {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "insignificant"
	}
}

// Direction is the classified movement between two consecutive offsets.
// Magnitude is the signed delta and is zero for Insignificant.
type Direction struct {
	Kind      DirectionKind
	Magnitude float64
}

func (d Direction) String() string {
	if d.Kind == Insignificant {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s(%.1f)", d.Kind, d.Magnitude)
}

// HeaderState is the visual state of the collapsible header
type HeaderState int

const (
	StateInitial HeaderState = iota
	StateExpanded
	StateCollapsed
)

func (s HeaderState) String() string {
	switch s {
	case StateExpanded:
		return "expanded"
	case StateCollapsed:
		return "collapsed"
	default:
		return "initial"
	}
}

// Decision is the outcome of index-driven classification
type Decision int

const (
	DecisionExpand Decision = iota
	DecisionCollapse
)

func (d Decision) String() string {
	if d == DecisionCollapse {
		return "collapse"
	}
	return "expand"
}

// State maps a decision onto the header state it produces
func (d Decision) State() HeaderState {
	if d == DecisionCollapse {
		return StateCollapsed
	}
	return StateExpanded
}

// Strategy selects which classifier drives the header
type Strategy string

const (
	StrategyOffset Strategy = "offset" // per-sample offset classification
	StrategyIndex  Strategy = "index"  // throttled row-visibility classification
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyOffset, StrategyIndex:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyOffset, StrategyIndex)
	}
}

// Toggle returns the other strategy
func (s Strategy) Toggle() Strategy {
	if s == StrategyIndex {
		return StrategyOffset
	}
	return StrategyIndex
}
