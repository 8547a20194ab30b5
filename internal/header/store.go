package header

import "scrollhead/internal/domain"

// Observer is notified after the header state changes
type Observer func(prev, next domain.HeaderState)

type observerEntry struct {
	id int
	fn Observer
}

// Store holds the header state. Classifiers are its only writers; any number
// of observers may subscribe.
type Store struct {
	state     domain.HeaderState
	observers []observerEntry
	nextID    int
}

// NewStore creates a store in the initial state
func NewStore() *Store {
	return &Store{state: domain.StateInitial}
}

// State returns the current header state
func (s *Store) State() domain.HeaderState {
	return s.state
}

// Subscribe registers an observer and returns a function that removes it
func (s *Store) Subscribe(fn Observer) func() {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// set updates the state and notifies observers in subscription order.
// It reports whether the value changed.
func (s *Store) set(next domain.HeaderState) bool {
	if next == s.state {
		return false
	}
	prev := s.state
	s.state = next
	for _, o := range append([]observerEntry(nil), s.observers...) {
		o.fn(prev, next)
	}
	return true
}
