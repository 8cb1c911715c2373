package media

import (
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Static is a MediaQueries whose answers are set explicitly. Set notifies
// OnChange subscribers when a value actually changes.
type Static struct {
	mu        sync.Mutex
	values    map[string]bool
	listeners map[string]map[int]func(bool)
	nextID    int
}

// NewStatic creates a Static seeded with initial answers. Unset queries do
// not match.
func NewStatic(initial map[string]bool) *Static {
	values := make(map[string]bool, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Static{values: values, listeners: make(map[string]map[int]func(bool))}
}

// Matches implements ports.MediaQueries.
func (s *Static) Matches(query string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[query]
}

// OnChange implements ports.MediaQueries.
func (s *Static) OnChange(query string, fn func(matches bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.listeners[query] == nil {
		s.listeners[query] = make(map[int]func(bool))
	}
	s.listeners[query][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners[query], id)
	}
}

// Set updates the answer for query and notifies listeners on change.
func (s *Static) Set(query string, matches bool) {
	s.mu.Lock()
	if current, ok := s.values[query]; ok && current == matches {
		s.mu.Unlock()
		return
	}
	s.values[query] = matches
	fns := make([]func(bool), 0, len(s.listeners[query]))
	for _, fn := range s.listeners[query] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(matches)
	}
}

var _ ports.MediaQueries = (*Static)(nil)
