package header

import (
	"time"

	"scrollhead/internal/domain"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 9, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type transition struct {
	state domain.HeaderState
	at    time.Time
}

type recordingDriver struct {
	calls []transition
}

func (d *recordingDriver) Transition(state domain.HeaderState, at time.Time) {
	d.calls = append(d.calls, transition{state: state, at: at})
}

func sample(offset float64) domain.ScrollSample {
	return domain.ScrollSample{Offset: offset}
}
