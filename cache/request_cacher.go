package cache

// DefaultMaxCached caps how many recent requests are kept per user.
const DefaultMaxCached = 3

// RequestCacher records recent requests per user and reads them back,
// newest first.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}

// Disabled is the no-op cacher used when Redis is not configured.
type Disabled struct{}

func (Disabled) Write(string, []byte) error { return nil }

func (Disabled) Read(string) ([]string, error) { return nil, nil }
