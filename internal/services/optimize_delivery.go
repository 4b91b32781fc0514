package services

import (
	"context"
	"fmt"
	"strings"

	"be-route-service/internal/domain"
	"be-route-service/internal/links"
	"be-route-service/internal/ports"
	"be-route-service/internal/routing"
)

type OptimizeDeliveryRequest struct {
	// Origin is the fixed starting location: an address or a "lat, lon"
	// literal.
	Origin string

	// Stops are delivery addresses in input order. Duplicates are legal
	// and stay distinct.
	Stops []string

	// MaxSegmentEntries and MaxReversals override engine policy when > 0.
	MaxSegmentEntries int
	MaxReversals      int
}

// OrderedStop is a stop in final visiting order.
type OrderedStop struct {
	Position   int
	InputIndex int
	Label      string
	Point      domain.Point
}

type OptimizeDeliveryResult struct {
	Origin          domain.Point
	Stops           []OrderedStop
	Segments        []domain.Segment
	Links           []string
	TotalDistanceKm float64
	Converged       bool
}

// OptimizeDelivery resolves the origin and every stop address, orders the
// stops into a travel-efficient open path, and renders the segment links.
//
// All state lives in the request: concurrent calls never share a matrix
// or route. The geocoder is the only collaborator that performs I/O;
// its failures are returned verbatim, wrapped with the offending address,
// and never retried here.
func OptimizeDelivery(
	ctx context.Context,
	req OptimizeDeliveryRequest,
	geocoder ports.Geocoder,
) (*OptimizeDeliveryResult, error) {
	originAddr := strings.TrimSpace(req.Origin)
	if originAddr == "" {
		return nil, fmt.Errorf("optimize delivery: %w", &domain.EmptyAddressError{StopIndex: domain.OriginIndex})
	}

	origin, err := geocoder.Resolve(ctx, originAddr)
	if err != nil {
		return nil, fmt.Errorf("optimize delivery: resolve origin %q: %w", originAddr, err)
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for i, addr := range req.Stops {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return nil, fmt.Errorf("optimize delivery: %w", &domain.EmptyAddressError{StopIndex: i})
		}

		p, err := geocoder.Resolve(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("optimize delivery: resolve stop %d %q: %w", i, addr, err)
		}

		stops = append(stops, domain.Stop{Index: i, Point: p, Label: addr})
	}

	res, err := routing.Optimize(origin, stops, routing.Options{
		MaxSegmentEntries: req.MaxSegmentEntries,
		MaxReversals:      req.MaxReversals,
	})
	if err != nil {
		return nil, fmt.Errorf("optimize delivery: %w", err)
	}

	ordered := make([]OrderedStop, 0, len(res.Route.Order))
	for pos, idx := range res.Route.Order {
		s := stops[idx]
		ordered = append(ordered, OrderedStop{
			Position:   pos + 1,
			InputIndex: s.Index,
			Label:      s.Label,
			Point:      s.Point,
		})
	}

	return &OptimizeDeliveryResult{
		Origin:          origin,
		Stops:           ordered,
		Segments:        res.Segments,
		Links:           links.ForSegments(res.Segments),
		TotalDistanceKm: res.Route.TotalDistanceKm,
		Converged:       res.Route.Converged,
	}, nil
}
