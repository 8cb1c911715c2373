package ports

// Media feature queries understood by MediaQueries implementations.
const (
	MediaPrefersDark   = "(prefers-color-scheme: dark)"
	MediaReducedMotion = "(prefers-reduced-motion: reduce)"
)

// Storage is a persistent string key/value store scoped to one origin or
// user profile. Get reports ok=false when the key has never been written.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// StorageEvents notifies about writes to a key made by some other writer
// (another tab, another process). Writes made through the same Storage value
// are not echoed back.
type StorageEvents interface {
	Subscribe(key string, fn func(newValue string)) (unsubscribe func())
}

// MediaQueries reports boolean media features and their changes.
type MediaQueries interface {
	Matches(query string) bool
	OnChange(query string, fn func(matches bool)) (unsubscribe func())
}

// Environment bundles the optional host capabilities. Any field may be nil
// when the capability is unavailable; consumers treat a nil capability as a
// no-op rather than an error.
type Environment struct {
	Storage  Storage
	Events   StorageEvents
	Media    MediaQueries
	Document Document
}
