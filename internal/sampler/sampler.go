// Package sampler turns viewport and content frames into scroll samples.
package sampler

import (
	"math"

	"scrollhead/internal/domain"
)

// Compute derives a sample from the visible viewport frame and the scrollable
// content frame. Both rectangles must share one coordinate space.
func Compute(viewport, content domain.Rect) domain.ScrollSample {
	return domain.ScrollSample{
		Offset:            viewport.Top - content.Top,
		OffsetToBottom:    content.Height - ((content.Top * -1) + viewport.Top + viewport.Height),
		ScrollableContent: math.Max(0, content.Height-viewport.Height),
	}
}

// Listener receives every emitted sample
type Listener func(domain.ScrollSample)

// Sampler remembers the last known frames and emits a sample whenever either
// one changes. Nothing is emitted until both frames are known.
type Sampler struct {
	viewport  *domain.Rect
	content   *domain.Rect
	listeners []listenerEntry
	nextID    int
	last      domain.ScrollSample
	hasSample bool
}

type listenerEntry struct {
	id int
	fn Listener
}

// New creates an empty sampler
func New() *Sampler {
	return &Sampler{}
}

// OnSample registers a listener and returns a function that removes it
func (s *Sampler) OnSample(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetViewport records the viewport frame
func (s *Sampler) SetViewport(r domain.Rect) {
	s.viewport = &r
	s.emit()
}

// SetContent records the content frame
func (s *Sampler) SetContent(r domain.Rect) {
	s.content = &r
	s.emit()
}

// Observe records both frames of one layout pass and emits a single sample
func (s *Sampler) Observe(viewport, content domain.Rect) domain.ScrollSample {
	s.viewport = &viewport
	s.content = &content
	s.emit()
	return s.last
}

// Last returns the most recent sample and whether one has been emitted
func (s *Sampler) Last() (domain.ScrollSample, bool) {
	return s.last, s.hasSample
}

func (s *Sampler) emit() {
	if s.viewport == nil || s.content == nil {
		return
	}
	s.last = Compute(*s.viewport, *s.content)
	s.hasSample = true
	for _, l := range s.listeners {
		l.fn(s.last)
	}
}
