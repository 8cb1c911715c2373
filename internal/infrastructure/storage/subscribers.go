package storage

import "sync"

// subscribers is a per-key callback registry shared by the adapters.
type subscribers struct {
	mu     sync.Mutex
	nextID int
	byKey  map[string]map[int]func(string)
}

func newSubscribers() *subscribers {
	return &subscribers{byKey: make(map[string]map[int]func(string))}
}

func (s *subscribers) add(key string, fn func(string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.byKey[key] == nil {
		s.byKey[key] = make(map[int]func(string))
	}
	s.byKey[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.byKey[key], id)
		})
	}
}

func (s *subscribers) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.byKey))
	for k, fns := range s.byKey {
		if len(fns) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// notify calls every subscriber of key outside the registry lock.
func (s *subscribers) notify(key, value string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.byKey[key]))
	for _, fn := range s.byKey[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}
