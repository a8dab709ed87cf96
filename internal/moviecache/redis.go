package moviecache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"trini/internal/candidate"
)

const (
	redisDialTimeout = 5 * time.Second
	redisScanCount   = 100
)

// RedisStore keeps each cache key in a redis hash named prefix+key with the
// fields records, count and updated_at.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("redis addr is required")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: redisDialTimeout,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStoreFromClient(rdb, prefix), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// Lookup returns the records stored under key.
func (s *RedisStore) Lookup(ctx context.Context, key string) ([]candidate.Raw, error) {
	ctx = ensureContext(ctx)
	payload, err := s.rdb.HGet(ctx, s.prefix+key, "records").Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", key, err)
	}
	return decodeRecords(payload)
}

// Put replaces the records stored under key.
func (s *RedisStore) Put(ctx context.Context, key string, records []candidate.Raw) error {
	ctx = ensureContext(ctx)
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	err = s.rdb.HSet(ctx, s.prefix+key,
		"records", data,
		"count", len(records),
		"updated_at", time.Now().UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in alphabetical order.
func (s *RedisStore) Keys(ctx context.Context) ([]KeyInfo, error) {
	ctx = ensureContext(ctx)
	names, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]KeyInfo, 0, len(names))
	for _, name := range names {
		values, err := s.rdb.HMGet(ctx, name, "count", "updated_at").Result()
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", name, err)
		}
		info := KeyInfo{Key: strings.TrimPrefix(name, s.prefix)}
		if str, ok := values[0].(string); ok {
			info.Count, _ = strconv.Atoi(str)
		}
		if str, ok := values[1].(string); ok {
			info.UpdatedAt, _ = time.Parse(time.RFC3339Nano, str)
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

// Clear removes every key under the prefix.
func (s *RedisStore) Clear(ctx context.Context) error {
	ctx = ensureContext(ctx)
	names, err := s.scan(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, names...).Err(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) scan(ctx context.Context) ([]string, error) {
	var (
		names  []string
		cursor uint64
	)
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, s.prefix+"*", redisScanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("scan keys: %w", err)
		}
		names = append(names, batch...)
		if next == 0 {
			return names, nil
		}
		cursor = next
	}
}
