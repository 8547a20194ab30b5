package header

import (
	"math"
	"time"

	"scrollhead/internal/domain"
)

// Defaults used when no configuration overrides them
const (
	DefaultThreshold         = 1.0
	DefaultThrottleWindow    = 500 * time.Millisecond
	DefaultAnimationDuration = 200 * time.Millisecond
	DefaultExpandedHeight    = 3.0
)

// Classify compares the magnitudes of two consecutive offsets. Moves no
// larger than threshold in either direction are Insignificant.
func Classify(last, current, threshold float64) domain.Direction {
	delta := math.Abs(current) - math.Abs(last)
	switch {
	case delta > threshold:
		return domain.Direction{Kind: domain.Up, Magnitude: delta}
	case delta < -threshold:
		return domain.Direction{Kind: domain.Down, Magnitude: delta}
	default:
		return domain.Direction{Kind: domain.Insignificant}
	}
}

// Target maps a direction onto the header state it asks for
func Target(d domain.Direction) (domain.HeaderState, bool) {
	switch d.Kind {
	case domain.Up:
		return domain.StateCollapsed, true
	case domain.Down:
		return domain.StateExpanded, true
	default:
		return domain.StateInitial, false
	}
}

// Driver runs the visual transition for a header state
type Driver interface {
	Transition(state domain.HeaderState, at time.Time)
}

// DriverFunc adapts a function to Driver
type DriverFunc func(state domain.HeaderState, at time.Time)

func (f DriverFunc) Transition(state domain.HeaderState, at time.Time) { f(state, at) }

type nopDriver struct{}

func (nopDriver) Transition(domain.HeaderState, time.Time) {}
