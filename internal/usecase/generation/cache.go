package generation

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/legiit/coldmail-backend/internal/entity"
)

// resultCache is the opt-in duplicate-spend protection: identical requests
// within the TTL return the cached batch instead of paying for a second
// generation. Vendor calls are never retried, so this is the only mechanism
// that can short-circuit a billed call.
type resultCache struct {
	store *gocache.Cache
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *resultCache) Get(key string) (*entity.GenerationResult, bool) {
	if c == nil {
		return nil, false
	}
	if v, ok := c.store.Get(key); ok {
		if result, ok := v.(*entity.GenerationResult); ok {
			return result, true
		}
	}
	return nil, false
}

func (c *resultCache) Set(key string, result *entity.GenerationResult) {
	if c == nil {
		return
	}
	c.store.SetDefault(key, result)
}

// fingerprint identifies a request for caching purposes. Mode and provider
// are part of the key so a configuration change never serves stale shapes.
func fingerprint(niche, product string, mode entity.OutputMode, provider entity.Provider) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		strings.ToLower(niche),
		strings.ToLower(product),
		string(mode),
		string(provider),
	}, "\x00")))
	return hex.EncodeToString(sum[:])
}
