package routing

import "be-route-service/internal/domain"

// DefaultMaxSegmentEntries is the waypoint ceiling of the downstream
// map-link service. Policy value, overridable through Options.
const DefaultMaxSegmentEntries = 10

// SplitSegments partitions a final visiting order into bounded segments.
//
// The first segment starts with the origin followed by up to maxEntries-1
// stops. Every later segment begins with the previous segment's last stop
// (one-stop overlap) so each segment is a continuous leg of the journey:
// segment i's travel start equals segment i-1's travel end. Concatenating
// the segments and dropping each leading overlap entry reconstructs the
// order exactly. The final segment may be shorter than maxEntries.
//
// An empty order yields a single trivial segment holding only the origin.
func SplitSegments(origin domain.Point, stops []domain.Stop, order []int, maxEntries int) []domain.Segment {
	if maxEntries < 2 {
		maxEntries = DefaultMaxSegmentEntries
	}

	start := domain.Waypoint{Point: origin, Label: "Origin"}
	if len(order) == 0 {
		return []domain.Segment{{Entries: []domain.Waypoint{start}}}
	}

	segments := make([]domain.Segment, 0, 1+len(order)/maxEntries)
	entries := []domain.Waypoint{start}
	for _, s := range order {
		stop := stops[s]
		entries = append(entries, domain.Waypoint{Point: stop.Point, Label: stop.Label})
		if len(entries) == maxEntries {
			segments = append(segments, domain.Segment{Entries: entries})
			// Next leg departs from where this one ended.
			entries = []domain.Waypoint{entries[maxEntries-1]}
		}
	}
	if len(entries) > 1 {
		segments = append(segments, domain.Segment{Entries: entries})
	}

	return segments
}
