package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Nil is returned by Get when the key does not exist
var Nil = redis.Nil

var client *redis.Client

var pingClient = func(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Init parses a redis:// URL, installs the shared client and pings it.
// The client stays installed when the ping fails; callers that want to run
// without Redis reset it with SetClient(nil).
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return pingClient(ctx, client)
}

// SetClient replaces the shared client. nil disables Redis backed features.
func SetClient(c *redis.Client) {
	client = c
}

func GetClient() *redis.Client {
	return client
}

// Available reports whether a client is installed
func Available() bool {
	return client != nil
}

// IsNil reports whether err means the key was absent
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// DelAll removes every key in one round trip
func DelAll(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

// SetNX sets a key only if it does not exist
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}

// AddToSet adds member to the set at key and pushes the set's expiry to ttl
func AddToSet(ctx context.Context, key, member string, ttl time.Duration) error {
	pipe := client.TxPipeline()
	pipe.SAdd(ctx, key, member)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// RemoveFromSet drops member from the set at key
func RemoveFromSet(ctx context.Context, key, member string) error {
	return client.SRem(ctx, key, member).Err()
}

// Members lists the set at key. A missing key is an empty set.
func Members(ctx context.Context, key string) ([]string, error) {
	return client.SMembers(ctx, key).Result()
}
