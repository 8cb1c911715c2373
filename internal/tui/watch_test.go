package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
)

func TestProgramAppliesThemeWithStoreForwarding(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	program := tea.NewProgram(NewModel(store),
		tea.WithInput(strings.NewReader("j\rq")),
		tea.WithOutput(&strings.Builder{}),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	stop := Forward(store, program)
	defer stop()

	type result struct {
		model tea.Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		final, err := program.Run()
		done <- result{final, err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		m, ok := res.model.(Model)
		require.True(t, ok)
		assert.Equal(t, "Applied Cosmic Dawn", m.status)
		assert.Equal(t, "cosmic-dawn", m.Snapshot().Current.ID)
	case <-time.After(5 * time.Second):
		program.Kill()
		t.Fatal("picker did not exit after apply and quit")
	}

	assert.Equal(t, "cosmic-dawn", store.Snapshot().Current.ID)
	assert.Equal(t, "cosmic-dawn", string(store.Preference()))
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) themeIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.msgs))
	for _, msg := range r.msgs {
		ids = append(ids, msg.(SnapshotMsg).Snapshot.Current.ID)
	}
	return ids
}

func TestForwardRelaysChangesInOrder(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	sender := &recordingSender{}
	stop := Forward(store, sender)

	require.NoError(t, store.SetTheme("midnight-retro"))
	require.NoError(t, store.SetTheme("neon-burst"))

	require.Eventually(t, func() bool {
		return len(sender.themeIDs()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"midnight-retro", "neon-burst"}, sender.themeIDs())

	stop()
	stop()
	require.NoError(t, store.SetTheme("soft-pastels"))
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, sender.themeIDs(), 2)
}

func TestSnapshotMsgForCurrentStateIsIgnored(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)
	m := NewModel(store)
	m, _ = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Applied Cosmic Dawn", m.status)

	next, cmd := m.Update(SnapshotMsg{Snapshot: store.Snapshot()})
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, "Applied Cosmic Dawn", m.status)
	assert.NotContains(t, m.View(), "changed elsewhere")
}

var _ Subscriber = (*apptheme.Store)(nil)
