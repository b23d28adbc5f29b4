package market

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// CachedSource caches the rates of another source per base currency.
type CachedSource struct {
	source RateSource
	cache  *ristretto.Cache
	ttl    time.Duration
}

// NewCachedSource creates a cache in front of source. Rates expire
// after ttl.
func NewCachedSource(source RateSource, ttl time.Duration) (*CachedSource, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create rate cache: %w", err)
	}

	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
	}, nil
}

func (s *CachedSource) Latest(ctx context.Context, base string) (Rates, error) {
	if cached, ok := s.cache.Get(base); ok {
		if rates, ok := cached.(Rates); ok {
			return rates, nil
		}
	}

	rates, err := s.source.Latest(ctx, base)
	if err != nil {
		return Rates{}, err
	}

	s.cache.SetWithTTL(base, rates, 1, s.ttl)
	s.cache.Wait()

	return rates, nil
}

// Close stops the cache.
func (s *CachedSource) Close() {
	s.cache.Close()
}
