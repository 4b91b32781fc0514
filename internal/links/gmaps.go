// Package links renders route segments into map-navigation deep links.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"be-route-service/internal/domain"
)

const gmapsBase = "https://www.google.com/maps/dir/"

// DirectionsLink renders a segment as a Google Maps directions URL. The
// first entry becomes the origin, the last the destination, and any
// entries in between are waypoints in visiting order. A single-entry
// segment (origin only) yields a link centered on that point.
func DirectionsLink(seg domain.Segment) string {
	entries := seg.Entries
	if len(entries) == 0 {
		return ""
	}

	q := url.Values{}
	q.Set("api", "1")

	if len(entries) == 1 {
		q.Set("destination", formatPoint(entries[0].Point))
		return gmapsBase + "?" + q.Encode()
	}

	q.Set("origin", formatPoint(entries[0].Point))
	q.Set("destination", formatPoint(entries[len(entries)-1].Point))

	if len(entries) > 2 {
		waypoints := make([]string, 0, len(entries)-2)
		for _, e := range entries[1 : len(entries)-1] {
			waypoints = append(waypoints, formatPoint(e.Point))
		}
		q.Set("waypoints", strings.Join(waypoints, "|"))
	}

	return gmapsBase + "?" + q.Encode()
}

// ForSegments renders one link per segment.
func ForSegments(segments []domain.Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, DirectionsLink(seg))
	}
	return out
}

func formatPoint(p domain.Point) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}
