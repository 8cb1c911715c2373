package theme

import (
	"context"
	"sync"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// DefaultStorageKey is the storage key holding the preference.
const DefaultStorageKey = "theme-preference"

// Options configures a Store.
type Options struct {
	// Catalog defaults to the built-in catalog.
	Catalog     *domaintheme.Catalog
	Environment ports.Environment
	Logger      ports.Logger
	// StorageKey defaults to DefaultStorageKey.
	StorageKey string
}

// Snapshot is a consistent view of the store state.
type Snapshot struct {
	Current           domaintheme.Definition
	Preference        domaintheme.Preference
	SystemPrefersDark bool
}

// IsDark reports whether the current theme is dark.
func (s Snapshot) IsDark() bool { return s.Current.IsDark() }

// IsLight reports whether the current theme is light.
func (s Snapshot) IsLight() bool { return s.Current.IsLight() }

// IsAuto reports whether the preference follows the system.
func (s Snapshot) IsAuto() bool { return s.Preference == domaintheme.PreferenceAuto }

// Equal reports whether other describes the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Current.ID == other.Current.ID &&
		s.Preference == other.Preference &&
		s.SystemPrefersDark == other.SystemPrefersDark
}

// Store owns the theme preference, resolves it against the catalog and keeps
// persistence, document and subscribers in step. It is safe for concurrent
// use.
type Store struct {
	ctx     context.Context
	catalog *domaintheme.Catalog
	env     ports.Environment
	applier *Applier
	logger  ports.Logger
	key     string

	mu    sync.Mutex
	state Snapshot

	listenersMu sync.Mutex
	listeners   map[int]func(Snapshot)
	nextID      int

	detach    []func()
	closeOnce sync.Once
}

// NewStore reads the stored preference and the system signal, applies the
// resolved theme to the document and starts listening for system and
// storage changes. ctx supplies log correlation for callbacks.
func NewStore(ctx context.Context, opts Options) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = domaintheme.Builtin()
	}
	key := opts.StorageKey
	if key == "" {
		key = DefaultStorageKey
	}

	s := &Store{
		ctx:       ctx,
		catalog:   catalog,
		env:       opts.Environment,
		applier:   NewApplier(opts.Environment.Document),
		key:       key,
		listeners: make(map[int]func(Snapshot)),
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With("layer", "application", "component", "store")
	}

	s.mu.Lock()
	s.state.Preference = s.readPreference()
	s.state.SystemPrefersDark = s.env.Media != nil && s.env.Media.Matches(ports.MediaPrefersDark)
	s.state.Current = s.catalog.Resolve(s.state.Preference, s.state.SystemPrefersDark)
	s.applier.Apply(s.state.Current)
	s.mu.Unlock()

	s.debug("store initialised", "preference", string(s.state.Preference), "theme_id", s.state.Current.ID)

	if s.env.Media != nil {
		s.detach = append(s.detach, s.env.Media.OnChange(ports.MediaPrefersDark, s.handleSystemChange))
	}
	if s.env.Events != nil {
		s.detach = append(s.detach, s.env.Events.Subscribe(s.key, s.handleStorageChange))
	}
	return s
}

func (s *Store) readPreference() domaintheme.Preference {
	if s.env.Storage == nil {
		return domaintheme.PreferenceAuto
	}
	value, ok, err := s.env.Storage.Get(s.key)
	if err != nil {
		s.warn("failed to read theme preference", "key", s.key, "error", err)
		return domaintheme.PreferenceAuto
	}
	if !ok || value == "" {
		return domaintheme.PreferenceAuto
	}
	return domaintheme.Preference(value)
}

// SetTheme selects a specific theme. Unknown IDs leave the state untouched
// and return an error matching domaintheme.ErrThemeNotFound.
func (s *Store) SetTheme(id string) error {
	def, ok := s.catalog.FindByID(id)
	if !ok {
		s.warn("theme not found", "theme_id", id)
		return domaintheme.NewNotFoundError(id)
	}
	s.transition(func(state *Snapshot) bool {
		state.Preference = domaintheme.Preference(def.ID)
		state.Current = def
		return true
	})
	return nil
}

// SetThemeMode selects light, dark or auto.
func (s *Store) SetThemeMode(mode domaintheme.Mode) error {
	if !mode.Valid() {
		s.warn("invalid theme mode", "mode", string(mode))
		return domaintheme.NewInvalidModeError(string(mode))
	}
	s.transition(func(state *Snapshot) bool {
		s.setMode(state, mode)
		return true
	})
	return nil
}

// ToggleMode flips between light and dark. Under auto it picks the opposite
// of the system signal; otherwise the opposite of the current theme.
func (s *Store) ToggleMode() {
	s.transition(func(state *Snapshot) bool {
		next := domaintheme.ModeDark
		switch {
		case state.IsAuto():
			if state.SystemPrefersDark {
				next = domaintheme.ModeLight
			}
		case state.Current.IsDark():
			next = domaintheme.ModeLight
		}
		s.setMode(state, next)
		return true
	})
}

func (s *Store) setMode(state *Snapshot, mode domaintheme.Mode) {
	state.Preference = domaintheme.Preference(mode)
	state.Current = s.catalog.Resolve(state.Preference, state.SystemPrefersDark)
}

func (s *Store) handleSystemChange(matches bool) {
	s.debug("system color scheme changed", "prefers_dark", matches)
	s.update(func(state *Snapshot) {
		state.SystemPrefersDark = matches
		if state.IsAuto() {
			state.Current = s.catalog.Resolve(state.Preference, matches)
		}
	})
}

func (s *Store) handleStorageChange(value string) {
	if value == "" {
		return
	}
	s.debug("preference changed by another writer", "preference", value)
	s.update(func(state *Snapshot) {
		state.Preference = domaintheme.Preference(value)
		state.Current = s.catalog.Resolve(state.Preference, state.SystemPrefersDark)
	})
}

// transition mutates state, persists the preference when mutate reports so,
// applies the result and notifies subscribers after the lock is released.
func (s *Store) transition(mutate func(state *Snapshot) (persist bool)) {
	s.mu.Lock()
	before := s.state
	persist := mutate(&s.state)
	if persist {
		s.persist(s.state.Preference)
	}
	s.applier.Apply(s.state.Current)
	after := s.state
	s.mu.Unlock()

	if !before.Equal(after) {
		s.info("theme changed", "preference", string(after.Preference), "theme_id", after.Current.ID)
		s.notify(after)
	}
}

func (s *Store) update(mutate func(state *Snapshot)) {
	s.transition(func(state *Snapshot) bool {
		mutate(state)
		return false
	})
}

func (s *Store) persist(pref domaintheme.Preference) {
	if s.env.Storage == nil {
		return
	}
	if err := s.env.Storage.Set(s.key, string(pref)); err != nil {
		s.logError("failed to persist theme preference", "key", s.key, "preference", string(pref), "error", err)
	}
}

// Subscribe registers fn for every state change and returns a function that
// removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(snap Snapshot) {
	s.listenersMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Close detaches the store from media and storage notifications.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		for _, fn := range s.detach {
			if fn != nil {
				fn()
			}
		}
	})
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the resolved theme.
func (s *Store) Current() domaintheme.Definition { return s.Snapshot().Current }

// Preference returns the stored preference: a mode or a theme id.
func (s *Store) Preference() domaintheme.Preference { return s.Snapshot().Preference }

// SystemPrefersDark returns the last system colour-scheme signal.
func (s *Store) SystemPrefersDark() bool { return s.Snapshot().SystemPrefersDark }

// IsDark reports whether the current theme is dark.
func (s *Store) IsDark() bool { return s.Snapshot().IsDark() }

// IsLight reports whether the current theme is light.
func (s *Store) IsLight() bool { return s.Snapshot().IsLight() }

// IsAuto reports whether the preference follows the system.
func (s *Store) IsAuto() bool { return s.Snapshot().IsAuto() }

// Themes returns every catalog theme in catalog order.
func (s *Store) Themes() []domaintheme.Definition { return s.catalog.All() }

// Catalog returns the catalog the store resolves against.
func (s *Store) Catalog() *domaintheme.Catalog { return s.catalog }

func (s *Store) debug(msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(s.ctx, msg, fields...)
	}
}

func (s *Store) info(msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Info(s.ctx, msg, fields...)
	}
}

func (s *Store) warn(msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(s.ctx, msg, fields...)
	}
}

func (s *Store) logError(msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Error(s.ctx, msg, fields...)
	}
}
