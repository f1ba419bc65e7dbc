package store

import "sync"

// Store is the mutable holder around the pure reducer. Dispatch is the single
// mutation entry point; it is safe for concurrent use, and each transition
// runs to completion before the next begins.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)
}

// New creates a store with the given initial state.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies an action through the reducer and returns the resulting
// state. Listeners are notified after the transition, outside the lock.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state.Clone()
	listeners := make([]func(State), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}
	return next
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to run after every dispatch. Subscriptions live for
// the lifetime of the store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
