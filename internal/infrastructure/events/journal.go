// Package events records theme state changes as structured log entries and
// fans them out to in-process subscribers.
package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Event types published by the theme store wiring.
const (
	EventThemeChanged = "theme.changed"
)

// Event is a named occurrence with flat fields.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// Handler reacts to a published event.
type Handler func(ctx context.Context, event Event) error

// Journal writes each event through the structured logger.
type Journal struct {
	logger ports.Logger

	mu     sync.RWMutex
	subs   map[string][]subscriber
	nextID int
}

type subscriber struct {
	id      int
	handler Handler
}

// NewJournal creates a journal logging through logger; a nil logger only
// notifies subscribers.
func NewJournal(logger ports.Logger) *Journal {
	return &Journal{
		logger: logger,
		subs:   make(map[string][]subscriber),
	}
}

// Publish logs the event with its fields in key order, then runs the
// handlers subscribed to its type. Handler failures are logged, never
// returned.
func (j *Journal) Publish(ctx context.Context, event Event) {
	if j == nil || event.Type == "" {
		return
	}

	j.mu.RLock()
	handlers := append([]subscriber(nil), j.subs[event.Type]...)
	j.mu.RUnlock()

	if j.logger != nil {
		j.logger.Info(ctx, "theme event", fields(event)...)
	}

	for _, s := range handlers {
		if err := s.handler(ctx, event); err != nil && j.logger != nil {
			j.logger.Warn(ctx, "event handler failed", "event_type", event.Type, "error", err)
		}
	}
}

// Subscribe registers handler for eventType and returns its cancel func.
func (j *Journal) Subscribe(eventType string, handler Handler) func() {
	if j == nil || handler == nil {
		return func() {}
	}

	j.mu.Lock()
	j.nextID++
	id := j.nextID
	j.subs[eventType] = append(j.subs[eventType], subscriber{id: id, handler: handler})
	j.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			j.mu.Lock()
			defer j.mu.Unlock()
			subs := j.subs[eventType]
			for i, s := range subs {
				if s.id == id {
					j.subs[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

func fields(event Event) []interface{} {
	keys := make([]string, 0, len(event.Fields))
	for key := range event.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]interface{}, 0, 2+2*len(keys))
	out = append(out, "event_type", event.Type)
	for _, key := range keys {
		out = append(out, key, event.Fields[key])
	}
	return out
}
