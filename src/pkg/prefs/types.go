package prefs

// Store abstracts the persisted key-value preference store. Implementations
// must be safe for concurrent use.
type Store interface {
	GetBool(key string, fallback bool) (bool, error)
	SetBool(key string, value bool) error
	GetString(key string, fallback string) (string, error)
	SetString(key string, value string) error
	Remove(key string) error
	Close() error
}
