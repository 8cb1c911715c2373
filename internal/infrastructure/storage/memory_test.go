package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestMemoryGetSet(t *testing.T) {
	t.Parallel()

	mem := NewMemory(map[string]string{"theme-preference": "dark"})

	value, ok, err := mem.Get("theme-preference")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)

	_, ok, err = mem.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mem.Set("theme-preference", "neon-burst"))
	value, _, _ = mem.Get("theme-preference")
	require.Equal(t, "neon-burst", value)
	require.Equal(t, 1, mem.Writes())
}

func TestMemoryFailWrites(t *testing.T) {
	t.Parallel()

	mem := NewMemory(nil)
	quota := errors.New("quota exceeded")
	mem.FailWrites(quota)

	err := mem.Set("k", "v")
	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.ErrorIs(t, err, quota)
	require.Zero(t, mem.Writes())

	_, ok, _ := mem.Get("k")
	require.False(t, ok)
}

func TestMemoryEmitNotifiesSubscribersOnly(t *testing.T) {
	t.Parallel()

	mem := NewMemory(nil)
	var got []string
	unsubscribe := mem.Subscribe("theme-preference", func(v string) { got = append(got, v) })

	require.NoError(t, mem.Set("theme-preference", "light"))
	mem.Emit("theme-preference", "dark")
	mem.Emit("other-key", "ignored")
	require.Equal(t, []string{"dark"}, got)

	unsubscribe()
	mem.Emit("theme-preference", "auto")
	require.Equal(t, []string{"dark"}, got)

	value, _, _ := mem.Get("theme-preference")
	require.Equal(t, "auto", value)
}
