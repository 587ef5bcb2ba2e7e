package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is the JSON cache used for report results.
type IRedis interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

type Options struct {
	Address  string
	Password string
	DB       int
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

// New returns a noop cache when no address is configured.
func New(opts Options, log *logrus.Logger) IRedis {
	if opts.Address == "" {
		log.Info("Redis address not configured, report cache disabled")
		return noop{}
	}

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", opts.Address))

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return NewFromClient(client, log)
}

func NewFromClient(client *redis.Client, log *logrus.Logger) IRedis {
	return &redisClient{client: client, log: log}
}

func (r *redisClient) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.log.Debug(fmt.Sprintf("Cache miss for key %s", key))
		return false, nil
	} else if err != nil {
		r.log.Error(fmt.Sprintf("Error getting key %s: %v", key, err))
		return false, err
	}

	if err := jsoniter.Unmarshal(val, dest); err != nil {
		r.log.Error(fmt.Sprintf("Error decoding cached value for key %s: %v", key, err))
		return false, err
	}

	r.log.Debug(fmt.Sprintf("Cache hit for key %s", key))
	return true, nil
}

func (r *redisClient) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	payload, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		r.log.Error(fmt.Sprintf("Error setting key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) Incr(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.log.Error(fmt.Sprintf("Error incrementing key %s: %v", key, err))
		return 0, err
	}
	return val, nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}

func (r *redisClient) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.log.Error(fmt.Sprintf("Error scanning keys with prefix %s: %v", prefix, err))
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Error(fmt.Sprintf("Error deleting keys with prefix %s: %v", prefix, err))
		return err
	}

	r.log.Debug(fmt.Sprintf("Deleted %d keys with prefix %s", len(keys), prefix))
	return nil
}

type noop struct{}

func (noop) GetJSON(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (noop) SetJSON(context.Context, string, interface{}, time.Duration) error { return nil }
func (noop) Incr(context.Context, string) (int64, error)                       { return 0, nil }
func (noop) DeleteByPrefix(context.Context, string) error                      { return nil }
func (noop) Close() error                                                      { return nil }
