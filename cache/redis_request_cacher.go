package cache

import "gopkg.in/redis.v5"

// RedisRequestCacher keeps the newest MaxNumber entries per key in a
// Redis list.
type RedisRequestCacher struct {
	Client    *redis.Client
	MaxNumber int
}

func NewRedisRequestCacher(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{Client: client, MaxNumber: maxNumber}
}

func (r *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := r.Client.LPush(key, value)
	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := r.Client.LTrim(key, 0, int64(r.MaxNumber-1))
	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (r *RedisRequestCacher) Read(key string) ([]string, error) {
	return r.Client.LRange(key, 0, int64(r.MaxNumber-1)).Result()
}
