// Package routing is the route-ordering engine: a haversine distance
// model, a pairwise distance matrix, a nearest-neighbor construction
// heuristic, a 2-opt refinement pass, and deterministic segmentation of
// the final order into bounded map-link chunks.
//
// Every function here is a pure computation over one request's data. No
// stage performs I/O, retains state across calls, or shares anything
// mutable, so concurrent requests may invoke the engine freely as long as
// each uses its own inputs.
package routing

import (
	"be-route-service/internal/domain"
	"fmt"
)

// Options carries the engine's policy knobs. The zero value selects
// defaults for every field.
type Options struct {
	// MaxSegmentEntries bounds waypoints per segment, overlap and origin
	// included. 0 selects DefaultMaxSegmentEntries.
	MaxSegmentEntries int

	// MaxReversals caps accepted 2-opt reversals. 0 selects an
	// n^2-proportional default.
	MaxReversals int
}

// Result of one optimization request.
type Result struct {
	Route    domain.Route
	Segments []domain.Segment
}

// Optimize orders stops into a travel-efficient open path from origin and
// splits the result into segments. An empty stop list is valid and yields
// a single trivial segment containing only the origin. Fails with
// *domain.InvalidInputError when any coordinate is out of range.
func Optimize(origin domain.Point, stops []domain.Stop, opts Options) (Result, error) {
	m, err := BuildMatrix(origin, stops)
	if err != nil {
		return Result{}, fmt.Errorf("optimize: %w", err)
	}

	initial := NearestNeighbor(m)
	order, converged := TwoOpt(m, initial, opts.MaxReversals)

	return Result{
		Route: domain.Route{
			Order:           order,
			TotalDistanceKm: m.PathLength(order),
			Converged:       converged,
		},
		Segments: SplitSegments(origin, stops, order, opts.MaxSegmentEntries),
	}, nil
}
