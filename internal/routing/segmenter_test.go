package routing_test

import (
	"fmt"
	"testing"

	"be-route-service/internal/domain"
	"be-route-service/internal/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labeledStops builds n stops spread along a parallel, labeled "stop-i".
func labeledStops(n int) []domain.Stop {
	stops := make([]domain.Stop, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, domain.Stop{
			Index: i,
			Point: domain.Point{Lat: 0, Lon: 0.1 * float64(i+1)},
			Label: fmt.Sprintf("stop-%d", i),
		})
	}
	return stops
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func TestSplitSegmentsSingleChunk(t *testing.T) {
	origin := domain.Point{Lat: 0, Lon: 0}
	stops := labeledStops(4)

	segments := routing.SplitSegments(origin, stops, identityOrder(4), 10)
	require.Len(t, segments, 1)

	entries := segments[0].Entries
	require.Len(t, entries, 5)
	assert.Equal(t, origin, entries[0].Point)
	for i, s := range stops {
		assert.Equal(t, s.Label, entries[i+1].Label)
	}
}

func TestSplitSegmentsOverlapAcrossChunks(t *testing.T) {
	// Twelve stops with a ceiling of 10 entries per segment: the first
	// segment carries the origin plus nine stops, the second starts with
	// the first segment's last stop and carries the remaining three.
	origin := domain.Point{Lat: 0, Lon: 0}
	stops := labeledStops(12)

	segments := routing.SplitSegments(origin, stops, identityOrder(12), 10)
	require.Len(t, segments, 2)

	first, second := segments[0].Entries, segments[1].Entries
	require.Len(t, first, 10)
	require.Len(t, second, 4)

	assert.Equal(t, origin, first[0].Point)
	assert.Equal(t, first[len(first)-1], second[0], "segments must share the overlap stop")
	assert.Equal(t, "stop-11", second[len(second)-1].Label)
}

func TestSplitSegmentsBoundHolds(t *testing.T) {
	origin := domain.Point{Lat: 0, Lon: 0}
	for _, n := range []int{1, 9, 10, 19, 28, 30} {
		stops := labeledStops(n)
		for _, seg := range routing.SplitSegments(origin, stops, identityOrder(n), 10) {
			assert.LessOrEqual(t, len(seg.Entries), 10, "n=%d", n)
			assert.GreaterOrEqual(t, len(seg.Entries), 2, "n=%d", n)
		}
	}
}

func TestSplitSegmentsReconstruction(t *testing.T) {
	origin := domain.Point{Lat: 0, Lon: 0}
	for _, n := range []int{0, 1, 9, 10, 12, 25} {
		stops := labeledStops(n)
		segments := routing.SplitSegments(origin, stops, identityOrder(n), 10)

		// Concatenate all segments, dropping each later segment's leading
		// overlap entry; the result must be origin followed by every stop
		// in order.
		var flat []domain.Waypoint
		for i, seg := range segments {
			entries := seg.Entries
			if i > 0 {
				entries = entries[1:]
			}
			flat = append(flat, entries...)
		}

		require.Len(t, flat, n+1, "n=%d", n)
		assert.Equal(t, origin, flat[0].Point, "n=%d", n)
		for i := 0; i < n; i++ {
			assert.Equal(t, stops[i].Label, flat[i+1].Label, "n=%d entry=%d", n, i)
		}
	}
}

func TestSplitSegmentsEmptyOrder(t *testing.T) {
	origin := domain.Point{Lat: 12.5, Lon: -7.25}

	segments := routing.SplitSegments(origin, nil, nil, 10)
	require.Len(t, segments, 1)
	require.Len(t, segments[0].Entries, 1)
	assert.Equal(t, origin, segments[0].Entries[0].Point)
}
