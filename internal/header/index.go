package header

import (
	"time"

	"scrollhead/internal/domain"
)

// indexPair is a retained index together with the one retained before it
type indexPair struct {
	previous *int
	current  int
}

// pairWithPrevious pairs current with prev and returns the new previous
func pairWithPrevious(prev *int, current int) (indexPair, *int) {
	next := current
	return indexPair{previous: prev, current: current}, &next
}

// decide collapses only when a previous index exists and the list moved forward
func decide(p indexPair) domain.Decision {
	if p.previous != nil && *p.previous < p.current {
		return domain.DecisionCollapse
	}
	return domain.DecisionExpand
}

// dedupe reports whether d differs from the last emitted decision
func dedupe(last *domain.Decision, d domain.Decision) bool {
	return last == nil || *last != d
}

// IndexOutcome describes one released throttle window
type IndexOutcome struct {
	Fired      bool // the generation matched an open window
	Index      int
	Previous   *int
	Decision   domain.Decision
	Suppressed bool // same decision as the last one
	Changed    bool // the store value changed
	State      domain.HeaderState
}

// IndexClassifier decides from the order in which rows become visible
type IndexClassifier struct {
	store    *Store
	driver   Driver
	now      func() time.Time
	throttle *Throttle[int]

	previous *int
	last     *domain.Decision
}

// NewIndexClassifier creates a classifier writing to store. A nil driver or
// clock falls back to a no-op driver and time.Now.
func NewIndexClassifier(window time.Duration, store *Store, driver Driver, now func() time.Time) *IndexClassifier {
	if driver == nil {
		driver = nopDriver{}
	}
	if now == nil {
		now = time.Now
	}
	return &IndexClassifier{
		store:    store,
		driver:   driver,
		now:      now,
		throttle: NewThrottle[int](window),
	}
}

// Window returns the throttle window
func (c *IndexClassifier) Window() time.Duration {
	return c.throttle.Window()
}

// RowVisible offers a row index. When arm is true the caller schedules
// Flush(gen) after Window.
func (c *IndexClassifier) RowVisible(index int) (arm bool, gen uint64) {
	return c.throttle.Offer(index)
}

// Flush classifies the index retained for window gen
func (c *IndexClassifier) Flush(gen uint64) IndexOutcome {
	index, ok := c.throttle.Fire(gen)
	if !ok {
		return IndexOutcome{State: c.store.State()}
	}

	var pair indexPair
	pair, c.previous = pairWithPrevious(c.previous, index)
	d := decide(pair)

	out := IndexOutcome{
		Fired:    true,
		Index:    index,
		Previous: pair.previous,
		Decision: d,
	}

	if !dedupe(c.last, d) {
		out.Suppressed = true
		out.State = c.store.State()
		return out
	}
	c.last = &d

	if c.store.set(d.State()) {
		out.Changed = true
		c.driver.Transition(d.State(), c.now())
	}
	out.State = c.store.State()
	return out
}

// Reset forgets the previous index, the last decision and any open window
func (c *IndexClassifier) Reset() {
	c.previous = nil
	c.last = nil
	c.throttle.Reset()
}
