package header

import "time"

// Throttle keeps the latest value offered during a fixed window. The first
// offer of a window asks the caller to arm a timer; when that timer fires
// with the matching generation the retained value is released. Values
// replaced within a window are discarded, never queued.
type Throttle[T any] struct {
	window  time.Duration
	pending T
	has     bool
	armed   bool
	gen     uint64
}

// NewThrottle creates a throttle with the given window
func NewThrottle[T any](window time.Duration) *Throttle[T] {
	return &Throttle[T]{window: window}
}

// Window returns the window length
func (t *Throttle[T]) Window() time.Duration {
	return t.window
}

// Offer retains v. arm is true when the caller must schedule Fire(gen)
// after Window.
func (t *Throttle[T]) Offer(v T) (arm bool, gen uint64) {
	t.pending = v
	t.has = true
	if t.armed {
		return false, t.gen
	}
	t.armed = true
	t.gen++
	return true, t.gen
}

// Fire releases the value retained for the window identified by gen.
// Stale generations release nothing.
func (t *Throttle[T]) Fire(gen uint64) (T, bool) {
	var zero T
	if !t.armed || gen != t.gen || !t.has {
		return zero, false
	}
	v := t.pending
	t.pending = zero
	t.has = false
	t.armed = false
	return v, true
}

// Pending reports whether a window is open
func (t *Throttle[T]) Pending() bool {
	return t.armed
}

// Reset discards the open window; a timer already scheduled for it becomes stale
func (t *Throttle[T]) Reset() {
	var zero T
	t.pending = zero
	t.has = false
	t.armed = false
	t.gen++
}
