package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestFileStartsEmptyWhenMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	store, err := NewFile(path, nil)
	require.NoError(t, err)

	_, ok, err := store.Get("theme-preference")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = os.Stat(filepath.Dir(path))
	require.NoError(t, err)
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.json")
	first, err := NewFile(path, nil)
	require.NoError(t, err)
	require.NoError(t, first.Set("theme-preference", "galactic-night"))

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	second, err := NewFile(path, nil)
	require.NoError(t, err)
	value, ok, err := second.Get("theme-preference")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "galactic-night", value)
}

func TestFileRejectsCorruptDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path, nil)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestFileSetFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "preferences.json")
	store, err := NewFile(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme-preference", "light"))

	// A directory squatting on the temp path makes the write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = store.Set("theme-preference", "dark")
	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)

	value, _, _ := store.Get("theme-preference")
	require.Equal(t, "light", value)
}

func TestFileNotifiesWritesFromOtherInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.json")
	watched, err := NewFile(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = watched.Close() })

	var (
		mu  sync.Mutex
		got []string
	)
	watched.Subscribe("theme-preference", func(v string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, v)
	})

	require.NoError(t, watched.Set("theme-preference", "light"))

	other, err := NewFile(path, nil)
	require.NoError(t, err)
	require.NoError(t, other.Set("theme-preference", "electric-neon"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1] == "electric-neon"
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NotContains(t, got, "light")

	value, _, _ := watched.Get("theme-preference")
	require.Equal(t, "electric-neon", value)
}

func TestFileCloseWithoutSubscribers(t *testing.T) {
	t.Parallel()

	store, err := NewFile(filepath.Join(t.TempDir(), "p.json"), nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestFileReloadKeepsConcurrentWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.json")
	f, err := NewFile(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	var notified []string
	var mu sync.Mutex
	f.Subscribe("theme-preference", func(v string) {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, v)
	})

	const writes = 200
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				f.reload()
			}
		}
	}()

	for i := 0; i < writes; i++ {
		require.NoError(t, f.Set("theme-preference", "theme-"+strconv.Itoa(i)))
	}
	close(stop)
	wg.Wait()
	f.reload()

	want := "theme-" + strconv.Itoa(writes-1)
	value, ok, err := f.Get("theme-preference")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, value)

	mu.Lock()
	defer mu.Unlock()
	require.Empty(t, notified, "own writes must not come back as external changes")
}
