package domain

// Represents a single delivery destination with resolved coordinates.
// Identity is the original input-order Index; two stops may share identical
// coordinates and remain distinct. Label carries the raw address text for
// display and is never interpreted.
type Stop struct {
	Index int
	Point Point
	Label string
}

// A single entry in a route segment: a coordinate plus its display label.
type Waypoint struct {
	Point Point
	Label string
}

// Segment is a bounded, contiguous leg of the full route, sized for a
// map-link service with a limited waypoint count. The first entry is the
// segment's travel start (the origin for the first segment, the previous
// segment's last stop for later ones) and the last entry is its travel end.
type Segment struct {
	Entries []Waypoint
}

// Route is the planned visiting order over the input stops. Order holds
// stop indices (positions into the original input); the origin is the
// implicit predecessor of Order[0] and is never part of the permutation.
// Immutable planning data, produced fresh per request.
type Route struct {
	Order []int

	// TotalDistanceKm is the open-path length origin -> Order[0] -> ... -> last.
	TotalDistanceKm float64

	// Converged is false when refinement stopped on its reversal budget
	// instead of reaching a local optimum.
	Converged bool
}
