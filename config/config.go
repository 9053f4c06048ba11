package config

import "os"

const (
	DefaultAddr      = "127.0.0.1:3000"
	DefaultBooksFile = "books.json"
)

// Config carries the process configuration, read once at startup.
type Config struct {
	Addr      string // host:port to listen on
	BooksFile string // JSON seed file for the library
	RedisURL  string // empty disables request-activity tracking
}

func FromEnv() Config {
	return Config{
		Addr:      getenv("ADDR", DefaultAddr),
		BooksFile: getenv("BOOKS_FILE", DefaultBooksFile),
		RedisURL:  os.Getenv("REDIS_URL"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
