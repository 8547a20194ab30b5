// Package scenario replays recorded scroll input through a header
// controller on a simulated clock.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"scrollhead/internal/domain"
	"scrollhead/internal/header"
)

// ErrInvalidScenario is wrapped by every validation failure
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a scripted sequence of scroll input. Unset overrides keep the
// caller's options.
type Scenario struct {
	Strategy                string         `yaml:"strategy"`
	Threshold               *float64       `yaml:"threshold,omitempty"`
	ThrottleWindow          *time.Duration `yaml:"throttle_window,omitempty"`
	AnimationDuration       *time.Duration `yaml:"animation_duration,omitempty"`
	InitialPositionOverride *bool          `yaml:"initial_position_override,omitempty"`
	Steps                   []Step         `yaml:"steps"`
}

// Step is one input at a point in time. Exactly one of Offset and Row is set.
type Step struct {
	At     time.Duration `yaml:"at"`
	Offset *float64      `yaml:"offset,omitempty"`
	Row    *int          `yaml:"row,omitempty"`
}

// Transition is one observable header change
type Transition struct {
	At   time.Duration
	From domain.HeaderState
	To   domain.HeaderState
}

func (t Transition) String() string {
	return fmt.Sprintf("%8s  %-9s -> %s", t.At, t.From, t.To)
}

// Result summarizes a replay
type Result struct {
	Strategy    domain.Strategy
	Transitions []Transition
	Dropped     int // offset samples ignored mid-animation
	Suppressed  int // index decisions equal to the previous one
	Final       domain.HeaderState
}

// Load reads a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &s, nil
}

// Options applies the scenario's overrides to base
func (s *Scenario) Options(base header.Options) (header.Options, error) {
	opts := base
	if s.Strategy != "" {
		strategy, err := domain.ParseStrategy(s.Strategy)
		if err != nil {
			return opts, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
		opts.Strategy = strategy
	}
	if s.Threshold != nil {
		opts.Threshold = *s.Threshold
	}
	if s.ThrottleWindow != nil {
		opts.ThrottleWindow = *s.ThrottleWindow
	}
	if s.AnimationDuration != nil {
		opts.AnimationDuration = *s.AnimationDuration
	}
	if s.InitialPositionOverride != nil {
		opts.InitialPositionOverride = *s.InitialPositionOverride
	}
	return opts, nil
}

func (s *Scenario) validate(strategy domain.Strategy) error {
	var last time.Duration
	for i, step := range s.Steps {
		if step.At < last {
			return fmt.Errorf("%w: step %d goes back in time (%s < %s)", ErrInvalidScenario, i, step.At, last)
		}
		last = step.At

		switch {
		case (step.Offset == nil) == (step.Row == nil):
			return fmt.Errorf("%w: step %d needs exactly one of offset or row", ErrInvalidScenario, i)
		case step.Offset != nil && strategy != domain.StrategyOffset:
			return fmt.Errorf("%w: step %d is an offset under the %s strategy", ErrInvalidScenario, i, strategy)
		case step.Row != nil && strategy != domain.StrategyIndex:
			return fmt.Errorf("%w: step %d is a row under the %s strategy", ErrInvalidScenario, i, strategy)
		case step.Row != nil && *step.Row < 0:
			return fmt.Errorf("%w: step %d has a negative row", ErrInvalidScenario, i)
		}
	}
	return nil
}

type timer struct {
	due time.Duration
	gen uint64
}

// Replay runs the scenario against a fresh controller built from base
func Replay(s *Scenario, base header.Options) (*Result, error) {
	opts, err := s.Options(base)
	if err != nil {
		return nil, err
	}
	if err := s.validate(opts.Strategy); err != nil {
		return nil, err
	}

	start := time.Unix(0, 0).UTC()
	var elapsed time.Duration
	opts.Now = func() time.Time { return start.Add(elapsed) }

	c := header.NewController(opts)
	res := &Result{Strategy: opts.Strategy}
	c.Store().Subscribe(func(prev, next domain.HeaderState) {
		res.Transitions = append(res.Transitions, Transition{At: elapsed, From: prev, To: next})
	})

	var timers []timer
	fireUntil := func(limit time.Duration, all bool) {
		sort.SliceStable(timers, func(i, j int) bool { return timers[i].due < timers[j].due })
		for len(timers) > 0 && (all || timers[0].due <= limit) {
			t := timers[0]
			timers = timers[1:]
			elapsed = t.due
			if out := c.FlushThrottle(t.gen); out.Suppressed {
				res.Suppressed++
			}
		}
	}

	for _, step := range s.Steps {
		fireUntil(step.At, false)
		elapsed = step.At

		if step.Offset != nil {
			if out := c.HandleSample(domain.ScrollSample{Offset: *step.Offset}); out.Dropped {
				res.Dropped++
			}
			continue
		}

		arm, gen := c.RowVisible(*step.Row)
		if !arm {
			continue
		}
		if c.ThrottleWindow() <= 0 {
			if out := c.FlushThrottle(gen); out.Suppressed {
				res.Suppressed++
			}
			continue
		}
		timers = append(timers, timer{due: step.At + c.ThrottleWindow(), gen: gen})
	}
	fireUntil(0, true)

	res.Final = c.State()
	return res, nil
}
