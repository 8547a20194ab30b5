// Package animation drives the header height between its collapsed and
// expanded values.
package animation

import (
	"math"
	"time"
)

// EaseOut is a cubic ease-out curve on [0,1]
func EaseOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Animator interpolates a single value towards a target over a fixed duration
type Animator struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	started  bool
}

// New creates an animator resting at value
func New(value float64, duration time.Duration) *Animator {
	return &Animator{from: value, to: value, duration: duration}
}

// Start begins a transition from the value rendered at now towards target
func (a *Animator) Start(target float64, now time.Time) {
	a.from = a.Value(now)
	a.to = target
	a.start = now
	a.started = true
}

// Value returns the interpolated value at now
func (a *Animator) Value(now time.Time) float64 {
	if !a.started || a.duration <= 0 {
		return a.to
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		return a.to
	}
	p := EaseOut(float64(elapsed) / float64(a.duration))
	return a.from + (a.to-a.from)*p
}

// Rows rounds the value at now to whole terminal rows
func (a *Animator) Rows(now time.Time) int {
	return int(math.Round(a.Value(now)))
}

// Done reports whether the last transition has finished at now
func (a *Animator) Done(now time.Time) bool {
	return !a.started || now.Sub(a.start) >= a.duration
}

// Target returns the value the animator is heading to
func (a *Animator) Target() float64 { return a.to }

// StartedAt returns when the last transition began
func (a *Animator) StartedAt() (time.Time, bool) { return a.start, a.started }

// Duration returns the configured transition length
func (a *Animator) Duration() time.Duration { return a.duration }
