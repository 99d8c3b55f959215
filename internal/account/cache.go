package account

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// CachedRepository is a read-through cache over a Repository. Request
// authentication resolves the token subject to an account on every call, so
// the by-email lookup is the hot path worth caching. Writes invalidate.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
}

func NewCachedRepository(inner Repository, client *redis.Client) *CachedRepository {
	return &CachedRepository{inner: inner, client: client}
}

func (c *CachedRepository) key(email string) string {
	return "account:email:" + strings.ToLower(email)
}

func (c *CachedRepository) ByEmail(ctx context.Context, email string) (*Account, error) {
	if val, err := c.client.Get(ctx, c.key(email)).Result(); err == nil {
		var a Account
		if err := json.Unmarshal([]byte(val), &a); err == nil {
			return &a, nil
		}
	}

	a, err := c.inner.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(a); err == nil {
		// best effort, a cache miss next time is fine
		c.client.Set(ctx, c.key(email), data, cacheTTL)
	}
	return a, nil
}

func (c *CachedRepository) Create(ctx context.Context, a *Account) error {
	if err := c.inner.Create(ctx, a); err != nil {
		return err
	}
	c.client.Del(ctx, c.key(a.Email))
	return nil
}

func (c *CachedRepository) ByProviderSubject(ctx context.Context, p Provider, providerID string) (*Account, error) {
	return c.inner.ByProviderSubject(ctx, p, providerID)
}

func (c *CachedRepository) UpdateName(ctx context.Context, id, name string) error {
	if err := c.inner.UpdateName(ctx, id, name); err != nil {
		return err
	}
	// the cache key is the email, which this write does not carry; drop
	// everything under the prefix rather than serve a stale name
	iter := c.client.Scan(ctx, 0, "account:email:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	return nil
}
