package routing

// NearestNeighbor seeds an initial visiting order with a greedy walk.
//
// The walk starts at the origin and repeatedly moves to the closest
// unvisited stop. Ties go to the lowest original index so the result is
// reproducible regardless of container iteration order. The output is a
// permutation of [0, n) meant only to seed refinement; it is never
// returned to the caller directly.
func NearestNeighbor(m *Matrix) []int {
	n := m.StopCount()
	order := make([]int, 0, n)
	visited := make([]bool, n)

	current := 0 // matrix index; origin first
	for len(order) < n {
		best := -1
		var bestDist float64
		for s := 0; s < n; s++ {
			if visited[s] {
				continue
			}
			// Strict comparison keeps the lowest index on equal distances.
			if d := m.At(current, s+1); best == -1 || d < bestDist {
				best = s
				bestDist = d
			}
		}
		visited[best] = true
		order = append(order, best)
		current = best + 1
	}

	return order
}
