package routing_test

import (
	"testing"

	"be-route-service/internal/domain"
	"be-route-service/internal/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from an origin at (0,0) and the given stops.
func mustMatrix(t *testing.T, stops []domain.Stop) *routing.Matrix {
	t.Helper()
	m, err := routing.BuildMatrix(domain.Point{Lat: 0, Lon: 0}, stops)
	require.NoError(t, err)
	return m
}

func TestTwoOptKeepsAlreadyOptimalTriangle(t *testing.T) {
	// Nearest neighbor already yields the shortest open path for this
	// triangle; refinement must return the identical order.
	stops := stopsAt(
		[2]float64{0, 0.1},
		[2]float64{0, 0.2},
		[2]float64{0.1, 0.3},
	)
	m := mustMatrix(t, stops)

	initial := routing.NearestNeighbor(m)
	require.Equal(t, []int{0, 1, 2}, initial)

	refined, converged := routing.TwoOpt(m, initial, 0)
	assert.True(t, converged)
	assert.Equal(t, initial, refined)
}

func TestTwoOptSortsScrambledCollinearStops(t *testing.T) {
	// Four collinear stops; a scrambled initial order must be refined
	// into the geometrically monotonic one.
	stops := stopsAt(
		[2]float64{0, 0.1},
		[2]float64{0, 0.2},
		[2]float64{0, 0.3},
		[2]float64{0, 0.4},
	)
	m := mustMatrix(t, stops)

	refined, converged := routing.TwoOpt(m, []int{2, 0, 3, 1}, 0)
	assert.True(t, converged)
	assert.Equal(t, []int{0, 1, 2, 3}, refined)
}

func TestTwoOptMonotonicImprovementAndPermutation(t *testing.T) {
	stops := stopsAt(
		[2]float64{0.5, 0.1},
		[2]float64{-0.3, 0.4},
		[2]float64{0.2, -0.2},
		[2]float64{0.7, 0.7},
		[2]float64{-0.1, -0.5},
		[2]float64{0.4, 0.3},
		[2]float64{-0.6, 0.2},
	)
	m := mustMatrix(t, stops)

	initial := routing.NearestNeighbor(m)
	refined, _ := routing.TwoOpt(m, initial, 0)

	assert.LessOrEqual(t, m.PathLength(refined), m.PathLength(initial))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, refined)
}

func TestTwoOptLocalOptimalityOnConvergence(t *testing.T) {
	stops := stopsAt(
		[2]float64{0.5, 0.1},
		[2]float64{-0.3, 0.4},
		[2]float64{0.2, -0.2},
		[2]float64{0.7, 0.7},
		[2]float64{-0.1, -0.5},
	)
	m := mustMatrix(t, stops)

	refined, converged := routing.TwoOpt(m, routing.NearestNeighbor(m), 0)
	require.True(t, converged)

	base := m.PathLength(refined)
	n := len(refined)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			candidate := make([]int, n)
			copy(candidate, refined)
			for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
				candidate[lo], candidate[hi] = candidate[hi], candidate[lo]
			}
			assert.GreaterOrEqual(t, m.PathLength(candidate), base-1e-9,
				"reversal (%d,%d) still improves a converged route", i, j)
		}
	}
}

func TestTwoOptReversalBudget(t *testing.T) {
	stops := stopsAt(
		[2]float64{0, 0.1},
		[2]float64{0, 0.2},
		[2]float64{0, 0.3},
		[2]float64{0, 0.4},
	)
	m := mustMatrix(t, stops)

	// A single allowed reversal cannot finish sorting this order.
	refined, converged := routing.TwoOpt(m, []int{3, 2, 1, 0}, 1)
	assert.False(t, converged)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, refined)
	assert.LessOrEqual(t, m.PathLength(refined), m.PathLength([]int{3, 2, 1, 0}))
}

func TestTwoOptDegenerateInputs(t *testing.T) {
	stops := stopsAt([2]float64{0, 0.1})
	m := mustMatrix(t, stops)

	single, converged := routing.TwoOpt(m, []int{0}, 0)
	assert.True(t, converged)
	assert.Equal(t, []int{0}, single)

	empty, converged := routing.TwoOpt(mustMatrix(t, nil), nil, 0)
	assert.True(t, converged)
	assert.Empty(t, empty)
}

func TestTwoOptDoesNotMutateInput(t *testing.T) {
	stops := stopsAt(
		[2]float64{0, 0.1},
		[2]float64{0, 0.2},
		[2]float64{0, 0.3},
	)
	m := mustMatrix(t, stops)

	initial := []int{2, 1, 0}
	_, _ = routing.TwoOpt(m, initial, 0)
	assert.Equal(t, []int{2, 1, 0}, initial)
}
