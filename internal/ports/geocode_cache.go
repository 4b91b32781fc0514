package ports

import (
	"context"

	"be-route-service/internal/domain"
)

// Port: a boundary for persisting address -> coordinate lookups across
// requests. Keys are expected to be consistent (e.g., already normalized)
// by the caller. A cache miss is not an error; missing addresses are
// simply absent from the returned map.
type GeocodeCache interface {
	// Fetch cached coordinates for the given addresses.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Point, error)
	// Store address -> coordinate mappings in the cache.
	PutMany(ctx context.Context, results map[string]domain.Point) error
}
