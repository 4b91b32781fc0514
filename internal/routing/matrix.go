package routing

import (
	"be-route-service/internal/domain"
	"errors"
	"fmt"
)

// Matrix is a read-only (n+1)x(n+1) table of pairwise haversine distances
// in kilometers. Index 0 is the origin; stop i occupies index i+1. Built
// once per request and never mutated afterward.
type Matrix struct {
	n int
	d []float64
}

// BuildMatrix validates every coordinate and computes each pairwise
// distance exactly once, mirroring the lower triangle into the upper one.
// Returns *domain.InvalidInputError naming the offending stop when a
// coordinate is out of range. O(n^2) by design; n is expected to be tens
// of stops, not thousands.
func BuildMatrix(origin domain.Point, stops []domain.Stop) (*Matrix, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("build matrix: %w", err)
	}

	for i, s := range stops {
		if err := s.Point.Validate(); err != nil {
			var inv *domain.InvalidInputError
			if errors.As(err, &inv) {
				inv.StopIndex = i
			}
			return nil, fmt.Errorf("build matrix: %w", err)
		}
	}

	size := len(stops) + 1
	points := make([]domain.Point, 0, size)
	points = append(points, origin)
	for _, s := range stops {
		points = append(points, s.Point)
	}

	m := &Matrix{
		n: len(stops),
		d: make([]float64, size*size),
	}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			dist := Haversine(points[i], points[j])
			m.d[i*size+j] = dist
			m.d[j*size+i] = dist
		}
	}

	return m, nil
}

// StopCount returns n, the number of stops excluding the origin.
func (m *Matrix) StopCount() int { return m.n }

// At returns the distance between matrix indices i and j, where index 0
// is the origin and stop k sits at index k+1.
func (m *Matrix) At(i, j int) float64 { return m.d[i*(m.n+1)+j] }

// PathLength sums the open-path distance origin -> order[0] -> ... ->
// order[len-1] for a sequence of stop indices. No return edge to the
// origin is added.
func (m *Matrix) PathLength(order []int) float64 {
	total := 0.0
	prev := 0
	for _, s := range order {
		total += m.At(prev, s+1)
		prev = s + 1
	}
	return total
}
