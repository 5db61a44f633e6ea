package cache

// Volatilizer is the cache interface
type Volatilizer interface {
	// Get returns a string value from a key
	Get(key string) (string, error)
	// Set sets a string value
	Set(key string, value string) error
	// GetTyped returns a typed value from the cache
	GetTyped(key string, v any) error
	// SetTyped sets a typed value
	SetTyped(key string, v any) error
	// Inc increments a counter
	Inc(key string, by int64) (int64, error)
	// Dec decrements a counter
	Dec(key string, by int64) (int64, error)
}
