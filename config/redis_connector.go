package config

import "gopkg.in/redis.v5"

// SetupRedis returns a client for url, or nil when url is empty.
func SetupRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr: url,
	})
}
