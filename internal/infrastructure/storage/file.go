package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const fileVersion = "1.0"

// fileDocument is the on-disk layout of a preference file.
type fileDocument struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// File persists key/value pairs in a JSON document and reports writes made by
// other processes through fsnotify.
type File struct {
	path   string
	logger ports.Logger

	mu     sync.Mutex
	values map[string]string
	subs   *subscribers

	watchOnce sync.Once
	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// NewFile opens the preference file at path, creating its directory when
// needed. A missing file starts empty.
func NewFile(path string, logger ports.Logger) (*File, error) {
	f := &File{
		path:   filepath.Clean(path),
		logger: logger,
		values: make(map[string]string),
		subs:   newSubscribers(),
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	values, err := f.read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if values != nil {
		f.values = values
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Get implements ports.Storage.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	return value, ok, nil
}

// Set implements ports.Storage. The document is written atomically; on
// failure the in-memory view is left unchanged.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.values[key]
	f.values[key] = value
	if err := f.save(); err != nil {
		if existed {
			f.values[key] = previous
		} else {
			delete(f.values, key)
		}
		return apperrors.NewStorageError("write", key, err)
	}
	return nil
}

// Subscribe implements ports.StorageEvents. The file watcher starts with the
// first subscription.
func (f *File) Subscribe(key string, fn func(newValue string)) func() {
	unsubscribe := f.subs.add(key, fn)
	f.watchOnce.Do(f.startWatcher)
	return unsubscribe
}

// Close stops the file watcher.
func (f *File) Close() error {
	var err error
	f.closeOnce.Do(func() {
		f.mu.Lock()
		watcher, done := f.watcher, f.done
		f.mu.Unlock()
		if watcher == nil {
			return
		}
		err = watcher.Close()
		<-done
	})
	return err
}

func (f *File) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.warn("storage watcher unavailable", "error", err)
		return
	}
	// Atomic saves replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		f.warn("storage watcher unavailable", "error", err)
		return
	}

	f.mu.Lock()
	f.watcher = watcher
	f.done = make(chan struct{})
	f.mu.Unlock()

	go f.watch(watcher, f.done)
}

func (f *File) watch(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				f.reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			f.warn("storage watcher error", "error", err)
		}
	}
}

// reload re-reads the document and notifies subscribers of keys whose value
// changed. The read happens under f.mu so a concurrent Set cannot be
// replaced by an older copy of the file. Writes made through Set are already
// cached and do not notify.
func (f *File) reload() {
	type change struct{ key, value string }
	var changes []change

	f.mu.Lock()
	values, err := f.read()
	if err != nil {
		f.mu.Unlock()
		if !errors.Is(err, os.ErrNotExist) {
			f.warn("failed to reload storage", "error", err)
		}
		return
	}
	for _, key := range f.subs.keys() {
		next, ok := values[key]
		if !ok {
			continue
		}
		if current, had := f.values[key]; had && current == next {
			continue
		}
		changes = append(changes, change{key: key, value: next})
	}
	f.values = values
	f.mu.Unlock()

	for _, c := range changes {
		f.subs.notify(c.key, c.value)
	}
}

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewParseError(f.path, 0, err)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	return doc.Values, nil
}

// save writes the document to disk atomically. Callers hold f.mu.
func (f *File) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Values: f.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (f *File) warn(msg string, fields ...interface{}) {
	if f.logger == nil {
		return
	}
	f.logger.Warn(context.Background(), msg, append([]interface{}{"path", f.path}, fields...)...)
}

var (
	_ ports.Storage       = (*File)(nil)
	_ ports.StorageEvents = (*File)(nil)
)
