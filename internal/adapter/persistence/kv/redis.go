package kv

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "marmoraria:"

// RedisStore keeps each collection in a hash with "value" and "version"
// fields and guards writes with WATCH/MULTI.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	return readRedisEntry(ctx, s.rdb, s.prefix+key)
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	rkey := s.prefix + key
	next := expectedVersion + 1

	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, found, err := readRedisEntry(ctx, tx, rkey)
		if err != nil {
			return err
		}
		if (!found && expectedVersion != 0) || (found && current.Version != expectedVersion) {
			return ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, rkey, "value", string(value), "version", next)
			return nil
		})
		return err
	}, rkey)

	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, redis.TxFailedErr):
		return 0, ErrVersionConflict
	default:
		return 0, err
	}
}

type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

func readRedisEntry(ctx context.Context, c hashReader, rkey string) (Entry, bool, error) {
	fields, err := c.HGetAll(ctx, rkey).Result()
	if err != nil {
		return Entry{}, false, err
	}
	if len(fields) == 0 {
		return Entry{}, false, nil
	}
	version, err := strconv.ParseInt(fields["version"], 10, 64)
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Value: []byte(fields["value"]), Version: version}, true, nil
}
