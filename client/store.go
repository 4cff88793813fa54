package client

import "sync"

// Store owns one kiosk's state. Dispatch runs actions one at a time.
type Store struct {
	mu    sync.Mutex
	state State

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int
}

func NewStore() *Store {
	return &Store{state: InitialState(), subs: map[int]func(State){}}
}

// Dispatch applies a and notifies subscribers with the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Apply(s.state, a)
	next := s.state
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// State is a snapshot. The reducer never mutates its slices, but callers
// must not either.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every later dispatch and returns its cancel.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}
