package geocode

import (
	"context"
	"log"
	"strings"

	"be-route-service/internal/domain"
	"be-route-service/internal/ports"
)

// CachedGeocoder wraps a Geocoder with a persistent cache. Lookups are
// cache-first; fresh resolutions are written back best-effort (a failed
// cache write is logged, never fatal).
type CachedGeocoder struct {
	inner ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(inner ports.Geocoder, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, cache: cache}
}

func (c *CachedGeocoder) Resolve(ctx context.Context, address string) (domain.Point, error) {
	key := strings.Join(strings.Fields(address), " ")

	if c.cache != nil {
		hits, err := c.cache.GetMany(ctx, []string{key})
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if p, ok := hits[key]; ok {
			return p, nil
		}
	}

	p, err := c.inner.Resolve(ctx, address)
	if err != nil {
		return domain.Point{}, err
	}

	if c.cache != nil {
		if err := c.cache.PutMany(ctx, map[string]domain.Point{key: p}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return p, nil
}
