package sim

import "sync"

type subscription struct {
	id  uint64
	obs Observer
}

// Store is the shared presentation state. Every setter is total: any enum
// value may replace any other at any time, and no field constrains another.
type Store struct {
	mu        sync.RWMutex
	state     State
	initial   State
	observers []subscription
	nextID    uint64
}

func New(initial State) *Store {
	return &Store{
		state:     initial,
		initial:   initial,
		observers: make([]subscription, 0),
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers obs and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (s *Store) Subscribe(obs Observer) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, obs: obs})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) SetQuality(q Quality) { s.update(func(st *State) { st.Quality = q }) }
func (s *Store) SetDevice(d Device)   { s.update(func(st *State) { st.Device = d }) }
func (s *Store) SetEra(e Era)         { s.update(func(st *State) { st.Era = e }) }

func (s *Store) SetSimulateUser(v bool)  { s.update(func(st *State) { st.SimulateUser = v }) }
func (s *Store) SetCinematicMode(v bool) { s.update(func(st *State) { st.CinematicMode = v }) }
func (s *Store) SetShowAnalytics(v bool) { s.update(func(st *State) { st.ShowAnalytics = v }) }

func (s *Store) ToggleSimulateUser()  { s.update(func(st *State) { st.SimulateUser = !st.SimulateUser }) }
func (s *Store) ToggleCinematicMode() { s.update(func(st *State) { st.CinematicMode = !st.CinematicMode }) }
func (s *Store) ToggleAnalytics()     { s.update(func(st *State) { st.ShowAnalytics = !st.ShowAnalytics }) }

// Replace swaps in a whole state at once, e.g. when a preset is applied.
func (s *Store) Replace(next State) { s.update(func(st *State) { *st = next }) }

// Reset restores the state the store was created with.
func (s *Store) Reset() { s.Replace(s.initial) }

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	prev := s.state
	fn(&s.state)
	cur := s.state
	observers := make([]subscription, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, sub := range observers {
		sub.obs.OnChange(prev, cur)
	}
}
