package ports

import (
	"context"
	"fmt"
	"time"

	"be-route-service/internal/domain"
)

// Contract for resolving a free-text address into coordinates.
// Implementations perform network I/O and may fail transiently; the
// routing engine never calls this directly, only the service layer does.
type Geocoder interface {
	// Resolve an address (or a raw "lat, lon" literal) into a Point.
	Resolve(ctx context.Context, address string) (domain.Point, error)
}

// NotFoundError indicates the geocoder returned no result for an address.
type NotFoundError struct {
	Address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no geocode result for %q", e.Address)
}

// RateLimitedError indicates the upstream geocoding service rejected the
// request due to rate limiting. Retry policy belongs to the caller.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("geocoder rate limited, retry after %s", e.RetryAfter)
	}
	return "geocoder rate limited"
}
