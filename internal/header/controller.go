package header

import (
	"time"

	"scrollhead/internal/animation"
	"scrollhead/internal/domain"
	"scrollhead/internal/sampler"
)

// Options configures a Controller
type Options struct {
	Strategy                domain.Strategy
	Threshold               float64
	ThrottleWindow          time.Duration
	AnimationDuration       time.Duration
	ExpandedHeight          float64
	InitialPositionOverride bool
	Now                     func() time.Time
}

// DefaultOptions returns the stock configuration
func DefaultOptions() Options {
	return Options{
		Strategy:                domain.StrategyOffset,
		Threshold:               DefaultThreshold,
		ThrottleWindow:          DefaultThrottleWindow,
		AnimationDuration:       DefaultAnimationDuration,
		ExpandedHeight:          DefaultExpandedHeight,
		InitialPositionOverride: true,
	}
}

// Controller is the collapsible header: one store, both classifiers, and the
// height animator. The strategy picks which classifier sees host input.
type Controller struct {
	opts     Options
	strategy domain.Strategy

	store    *Store
	sampler  *sampler.Sampler
	offset   *OffsetClassifier
	index    *IndexClassifier
	animator *animation.Animator

	lastOutcome Outcome
}

// NewController wires a controller from opts
func NewController(opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyOffset
	}

	c := &Controller{
		opts:     opts,
		strategy: opts.Strategy,
		store:    NewStore(),
		sampler:  sampler.New(),
		animator: animation.New(0, opts.AnimationDuration),
	}

	driver := DriverFunc(c.animate)
	c.offset = NewOffsetClassifier(OffsetConfig{
		Threshold:               opts.Threshold,
		AnimationDuration:       opts.AnimationDuration,
		InitialPositionOverride: opts.InitialPositionOverride,
	}, c.store, driver, opts.Now)
	c.index = NewIndexClassifier(opts.ThrottleWindow, c.store, driver, opts.Now)

	c.sampler.OnSample(func(s domain.ScrollSample) {
		if c.strategy == domain.StrategyOffset {
			c.lastOutcome = c.offset.Feed(s)
		}
	})

	return c
}

// Store returns the observable header state
func (c *Controller) Store() *Store { return c.store }

// State returns the current header state
func (c *Controller) State() domain.HeaderState { return c.store.State() }

// Strategy returns the active strategy
func (c *Controller) Strategy() domain.Strategy { return c.strategy }

// ThrottleWindow returns the index throttle window
func (c *Controller) ThrottleWindow() time.Duration { return c.index.Window() }

// SetStrategy switches classifiers. Both are reset so neither acts on
// history gathered under the other; the header keeps its current state.
func (c *Controller) SetStrategy(s domain.Strategy) bool {
	if s == c.strategy {
		return false
	}
	c.strategy = s
	c.offset.Reset()
	c.index.Reset()
	c.lastOutcome = Outcome{State: c.store.State()}
	return true
}

// Layout feeds the frames of one layout pass through the sampler. Under the
// offset strategy the resulting sample is classified immediately.
func (c *Controller) Layout(viewport, content domain.Rect) (domain.ScrollSample, Outcome) {
	c.lastOutcome = Outcome{State: c.store.State()}
	sample := c.sampler.Observe(viewport, content)
	return sample, c.lastOutcome
}

// HandleSample classifies an already normalized sample
func (c *Controller) HandleSample(s domain.ScrollSample) Outcome {
	if c.strategy != domain.StrategyOffset {
		return Outcome{State: c.store.State()}
	}
	return c.offset.Feed(s)
}

// LastSample returns the latest sample seen by the sampler
func (c *Controller) LastSample() (domain.ScrollSample, bool) {
	return c.sampler.Last()
}

// RowVisible offers a visible row index under the index strategy. When arm
// is true the host schedules FlushThrottle(gen) after ThrottleWindow.
func (c *Controller) RowVisible(index int) (arm bool, gen uint64) {
	if c.strategy != domain.StrategyIndex {
		return false, 0
	}
	return c.index.RowVisible(index)
}

// FlushThrottle classifies the index retained for window gen
func (c *Controller) FlushThrottle(gen uint64) IndexOutcome {
	if c.strategy != domain.StrategyIndex {
		return IndexOutcome{State: c.store.State()}
	}
	return c.index.Flush(gen)
}

// LastOffset returns the offset remembered by the offset classifier
func (c *Controller) LastOffset() float64 { return c.offset.LastOffset() }

// Height returns the rendered header height at now
func (c *Controller) Height(now time.Time) float64 { return c.animator.Value(now) }

// Rows returns the rendered header height at now in whole rows
func (c *Controller) Rows(now time.Time) int { return c.animator.Rows(now) }

// Animating reports whether a height transition is running at now
func (c *Controller) Animating(now time.Time) bool { return !c.animator.Done(now) }

// HeightFor returns the target height of a state
func (c *Controller) HeightFor(state domain.HeaderState) float64 {
	if state == domain.StateExpanded {
		return c.opts.ExpandedHeight
	}
	return 0
}

func (c *Controller) animate(state domain.HeaderState, at time.Time) {
	c.animator.Start(c.HeightFor(state), at)
}
