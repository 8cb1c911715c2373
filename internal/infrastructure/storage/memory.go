package storage

import (
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Memory is an in-process Storage. Emit simulates a write by another writer
// and is delivered to subscribers; Set is not echoed back.
type Memory struct {
	mu        sync.Mutex
	values    map[string]string
	subs      *subscribers
	writes    int
	failWrite error
}

// NewMemory creates a Memory seeded with initial values.
func NewMemory(initial map[string]string) *Memory {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Memory{values: values, subs: newSubscribers()}
}

// Get implements ports.Storage.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements ports.Storage.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite != nil {
		return apperrors.NewStorageError("write", key, m.failWrite)
	}
	m.values[key] = value
	m.writes++
	return nil
}

// Subscribe implements ports.StorageEvents.
func (m *Memory) Subscribe(key string, fn func(newValue string)) func() {
	return m.subs.add(key, fn)
}

// Emit stores value as if another writer had written it and notifies
// subscribers of key.
func (m *Memory) Emit(key, value string) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()

	m.subs.notify(key, value)
}

// FailWrites makes every subsequent Set fail with err. A nil err restores
// normal behaviour.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite = err
}

// Writes returns the number of successful Set calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var (
	_ ports.Storage       = (*Memory)(nil)
	_ ports.StorageEvents = (*Memory)(nil)
)
