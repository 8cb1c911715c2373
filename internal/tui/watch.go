package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
)

// Subscriber reports store changes; it matches apptheme.Store.Subscribe.
type Subscriber interface {
	Subscribe(fn func(apptheme.Snapshot)) func()
}

// Sender delivers messages to a running program.
type Sender interface {
	Send(msg tea.Msg)
}

// Forward relays store changes to program as SnapshotMsg. Changes are queued
// and sent from a separate goroutine: the store notifies synchronously, and
// a change made from Update would otherwise block the event loop on Send.
// The returned func unsubscribes and stops the relay.
func Forward(store Subscriber, program Sender) func() {
	r := &relay{wake: make(chan struct{}, 1), done: make(chan struct{})}
	unsubscribe := store.Subscribe(r.push)
	go r.run(program)

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(r.done)
		})
	}
}

type relay struct {
	mu      sync.Mutex
	pending []apptheme.Snapshot

	wake chan struct{}
	done chan struct{}
}

func (r *relay) push(s apptheme.Snapshot) {
	r.mu.Lock()
	r.pending = append(r.pending, s)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *relay) run(program Sender) {
	for {
		select {
		case <-r.done:
			return
		case <-r.wake:
		}

		r.mu.Lock()
		batch := r.pending
		r.pending = nil
		r.mu.Unlock()

		for _, s := range batch {
			program.Send(SnapshotMsg{Snapshot: s})
		}
	}
}
