package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"be-route-service/internal/domain"
	"be-route-service/internal/platform/obs"
	"be-route-service/internal/ports"
)

// Matches a bare "lat, lon" pair such as "20.56912,-100.42088".
var coordRx = regexp.MustCompile(`^\s*(-?\d{1,2}\.\d+)[,\s]+(-?\d{1,3}\.\d+)\s*$`)

// NominatimGeocoder implements the Geocoder port against the
// OpenStreetMap Nominatim search endpoint.
//
// It resolves coordinate literals locally without any network call,
// appends an optional city hint to queries that do not already contain
// it, and retries transient failures with exponential backoff. The
// client is safe for concurrent use.
type NominatimGeocoder struct {
	session  *http.Client
	baseURL  string
	cityHint string
}

func NewNominatimGeocoder(baseURL, cityHint string) *NominatimGeocoder {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimGeocoder{
		session:  &http.Client{Timeout: 10 * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		cityHint: strings.TrimSpace(cityHint),
	}
}

// normalize ensures consistent queries by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseCoordinateLiteral detects a raw "lat, lon" input and returns the
// point directly when both components are in range.
func ParseCoordinateLiteral(address string) (domain.Point, bool) {
	match := coordRx.FindStringSubmatch(address)
	if match == nil {
		return domain.Point{}, false
	}

	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return domain.Point{}, false
	}
	lon, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return domain.Point{}, false
	}

	p := domain.Point{Lat: lat, Lon: lon}
	if p.Validate() != nil {
		return domain.Point{}, false
	}
	return p, true
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve an address into coordinates.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (_ domain.Point, err error) {
	defer obs.Time(ctx, "geocode.Resolve")(&err)

	address = g.normalize(address)
	if address == "" {
		return domain.Point{}, &ports.NotFoundError{Address: address}
	}

	if p, ok := ParseCoordinateLiteral(address); ok {
		return p, nil
	}

	query := address
	if g.cityHint != "" && !strings.Contains(strings.ToLower(address), strings.ToLower(g.cityHint)) {
		query = address + ", " + g.cityHint
	}

	endpoint := g.baseURL + "/search"
	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := url.Values{}
		q.Set("q", query)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("User-Agent", "be-route-service/1.0")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Point{}, &ports.NotFoundError{Address: address}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: invalid latitude %q", address, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: invalid longitude %q", address, results[0].Lon)
	}

	p := domain.Point{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	return p, nil
}
