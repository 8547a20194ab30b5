package header

import (
	"time"

	"scrollhead/internal/domain"
)

// OffsetConfig tunes the per-sample classifier
type OffsetConfig struct {
	Threshold         float64
	AnimationDuration time.Duration
	// InitialPositionOverride expands the header whenever both the new and
	// the remembered offset are exactly zero.
	InitialPositionOverride bool
}

// DefaultOffsetConfig returns the stock tuning
func DefaultOffsetConfig() OffsetConfig {
	return OffsetConfig{
		Threshold:               DefaultThreshold,
		AnimationDuration:       DefaultAnimationDuration,
		InitialPositionOverride: true,
	}
}

// Outcome describes what one sample did
type Outcome struct {
	Direction    domain.Direction
	State        domain.HeaderState // store value after the sample
	Dropped      bool               // arrived while the last transition was animating
	Override     bool               // initial-position override fired
	Transitioned bool               // a transition was started
	Changed      bool               // the store value changed
}

// OffsetClassifier classifies every scroll sample against the previous one
type OffsetClassifier struct {
	cfg    OffsetConfig
	store  *Store
	driver Driver
	now    func() time.Time

	lastOffset     float64
	lastTransition time.Time
	hasTransition  bool
}

// NewOffsetClassifier creates a classifier writing to store. A nil driver or
// clock falls back to a no-op driver and time.Now.
func NewOffsetClassifier(cfg OffsetConfig, store *Store, driver Driver, now func() time.Time) *OffsetClassifier {
	if driver == nil {
		driver = nopDriver{}
	}
	if now == nil {
		now = time.Now
	}
	return &OffsetClassifier{cfg: cfg, store: store, driver: driver, now: now}
}

// LastOffset returns the remembered offset
func (c *OffsetClassifier) LastOffset() float64 {
	return c.lastOffset
}

// LastTransition returns when the last transition started
func (c *OffsetClassifier) LastTransition() (time.Time, bool) {
	return c.lastTransition, c.hasTransition
}

// Reset forgets the remembered offset and the in-flight transition
func (c *OffsetClassifier) Reset() {
	c.lastOffset = 0
	c.lastTransition = time.Time{}
	c.hasTransition = false
}

// Feed classifies one sample and applies the resulting transition
func (c *OffsetClassifier) Feed(sample domain.ScrollSample) Outcome {
	now := c.now()
	current := sample.Offset

	if c.animating(now) {
		return Outcome{State: c.store.State(), Dropped: true}
	}

	if c.cfg.InitialPositionOverride && current == 0 && c.lastOffset == 0 {
		changed := c.transition(domain.StateExpanded, now)
		return Outcome{
			State:        c.store.State(),
			Override:     true,
			Transitioned: true,
			Changed:      changed,
		}
	}

	dir := Classify(c.lastOffset, current, c.cfg.Threshold)
	c.lastOffset = current

	target, ok := Target(dir)
	if !ok {
		return Outcome{Direction: dir, State: c.store.State()}
	}

	changed := c.transition(target, now)
	return Outcome{
		Direction:    dir,
		State:        c.store.State(),
		Transitioned: true,
		Changed:      changed,
	}
}

func (c *OffsetClassifier) animating(now time.Time) bool {
	return c.hasTransition && now.Sub(c.lastTransition) < c.cfg.AnimationDuration
}

// transition restarts the animation even when the state is unchanged, so the
// guard also covers repeated moves in the same direction.
func (c *OffsetClassifier) transition(state domain.HeaderState, now time.Time) bool {
	c.lastTransition = now
	c.hasTransition = true
	changed := c.store.set(state)
	c.driver.Transition(state, now)
	return changed
}
