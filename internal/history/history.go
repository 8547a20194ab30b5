// Package history keeps a bounded record of header transitions.
package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"scrollhead/internal/domain"
	"scrollhead/internal/eventbus"
)

// Entry is one recorded transition
type Entry struct {
	At       time.Time
	From     domain.HeaderState
	To       domain.HeaderState
	Strategy domain.Strategy
	Offset   float64
}

// Recorder is a fixed-size ring of entries. It is written from the event bus
// dispatcher and read from the UI, so access is locked.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	now     func() time.Time
}

// New creates a recorder holding at most size entries
func New(size int) *Recorder {
	if size < 1 {
		size = 1
	}
	return &Recorder{entries: make([]Entry, size), now: time.Now}
}

// Record appends an entry, overwriting the oldest when full
func (r *Recorder) Record(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

// Len returns the number of stored entries
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.entries)
	}
	return r.next
}

// Entries returns stored entries oldest first
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}

// Attach records every HeaderStateChanged event published on bus and
// returns the unsubscribe function
func (r *Recorder) Attach(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventHeaderStateChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.HeaderStateChangedEvent)
		if !ok {
			return
		}
		r.Record(Entry{
			At:       r.now(),
			From:     ev.From,
			To:       ev.To,
			Strategy: ev.Strategy,
			Offset:   ev.Offset,
		})
	})
}

// Format renders the entries as plain text, one per line
func (r *Recorder) Format() string {
	entries := r.Entries()
	if len(entries) == 0 {
		return "No header transitions yet.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s  %-8s  %-9s -> %-9s  %s\n", "time", "strategy", "from", "to", "offset")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-12s  %-8s  %-9s -> %-9s  %.1f\n",
			e.At.Format("15:04:05.000"), e.Strategy, e.From, e.To, e.Offset)
	}
	return b.String()
}
