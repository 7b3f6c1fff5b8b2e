package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"prauts/be/biz/config"
	"prauts/be/biz/model/domain"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "account_view:"
	defaultTTL       = 5 * time.Minute
)

// AccountViewCache keeps redacted account views in Redis so reads skip
// the primary store. It is best-effort: callers treat errors as misses.
type AccountViewCache struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewAccountViewCache(rdb redis.UniversalClient) *AccountViewCache {
	conf := config.GetCacheConf()

	prefix := conf.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	ttl := time.Duration(conf.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &AccountViewCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *AccountViewCache) key(accountID string) string {
	return c.prefix + accountID
}

func (c *AccountViewCache) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	raw, err := c.rdb.Get(ctx, c.key(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var a domain.Account
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *AccountViewCache) Set(ctx context.Context, a *domain.Account) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(a.AccountID), raw, c.ttl).Err()
}

func (c *AccountViewCache) Invalidate(ctx context.Context, accountID string) error {
	return c.rdb.Del(ctx, c.key(accountID)).Err()
}
