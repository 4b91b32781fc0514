package services

import (
	"context"
	"errors"
	"testing"

	"be-route-service/internal/domain"
	"be-route-service/internal/ports"
)

// mockGeocoder resolves from a fixed address -> point table.
type mockGeocoder struct {
	m     map[string]domain.Point
	calls int
}

func (g *mockGeocoder) Resolve(_ context.Context, address string) (domain.Point, error) {
	g.calls++
	p, ok := g.m[address]
	if !ok {
		return domain.Point{}, &ports.NotFoundError{Address: address}
	}
	return p, nil
}

func TestOptimizeDeliveryOrdersStops(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{
		"HUB": {Lat: 0, Lon: 0},
		"A":   {Lat: 0, Lon: 0.3},
		"B":   {Lat: 0, Lon: 0.1},
		"C":   {Lat: 0, Lon: 0.2},
	}}

	req := OptimizeDeliveryRequest{
		Origin: "HUB",
		Stops:  []string{"A", "B", "C"},
	}

	res, err := OptimizeDelivery(context.Background(), req, geocoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(res.Stops))
	}
	if res.Stops[0].Label != "B" {
		t.Errorf("expected first stop B, got %q", res.Stops[0].Label)
	}
	if res.Stops[1].Label != "C" {
		t.Errorf("expected second stop C, got %q", res.Stops[1].Label)
	}
	if res.Stops[2].Label != "A" {
		t.Errorf("expected third stop A, got %q", res.Stops[2].Label)
	}

	if !res.Converged {
		t.Errorf("expected convergence on a trivial instance")
	}
	if res.TotalDistanceKm <= 0 {
		t.Errorf("expected positive total distance, got %v", res.TotalDistanceKm)
	}
	if len(res.Links) != len(res.Segments) {
		t.Errorf("links = %d, segments = %d", len(res.Links), len(res.Segments))
	}
	if geocoder.calls != 4 {
		t.Errorf("expected 4 geocoder calls, got %d", geocoder.calls)
	}
}

func TestOptimizeDeliveryEmptyStops(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{
		"HUB": {Lat: 20.5888, Lon: -100.3899},
	}}

	res, err := OptimizeDelivery(context.Background(), OptimizeDeliveryRequest{Origin: "HUB"}, geocoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Stops) != 0 {
		t.Fatalf("expected no stops, got %d", len(res.Stops))
	}
	if len(res.Segments) != 1 {
		t.Fatalf("expected a single trivial segment, got %d", len(res.Segments))
	}
	if len(res.Segments[0].Entries) != 1 {
		t.Fatalf("trivial segment must hold only the origin")
	}
	if len(res.Links) != 1 {
		t.Fatalf("expected one link, got %d", len(res.Links))
	}
}

func TestOptimizeDeliveryUnknownStop(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{
		"HUB": {Lat: 0, Lon: 0},
	}}

	req := OptimizeDeliveryRequest{Origin: "HUB", Stops: []string{"nowhere"}}
	_, err := OptimizeDelivery(context.Background(), req, geocoder)

	var nf *ports.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Address != "nowhere" {
		t.Errorf("error should name the failing address, got %q", nf.Address)
	}
}

func TestOptimizeDeliveryMissingOrigin(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{}}
	_, err := OptimizeDelivery(context.Background(), OptimizeDeliveryRequest{Origin: "  "}, geocoder)

	var empty *domain.EmptyAddressError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyAddressError, got %v", err)
	}
	if empty.StopIndex != domain.OriginIndex {
		t.Errorf("error should point at the origin, got index %d", empty.StopIndex)
	}
	if geocoder.calls != 0 {
		t.Errorf("geocoder must not be called for an empty origin")
	}
}

func TestOptimizeDeliveryBlankStop(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{
		"HUB": {Lat: 0, Lon: 0},
		"A":   {Lat: 0, Lon: 0.1},
	}}

	req := OptimizeDeliveryRequest{Origin: "HUB", Stops: []string{"A", "  "}}
	_, err := OptimizeDelivery(context.Background(), req, geocoder)

	var empty *domain.EmptyAddressError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyAddressError, got %v", err)
	}
	if empty.StopIndex != 1 {
		t.Errorf("error should name stop 1, got index %d", empty.StopIndex)
	}
}

func TestOptimizeDeliveryDuplicateAddresses(t *testing.T) {
	geocoder := &mockGeocoder{m: map[string]domain.Point{
		"HUB":  {Lat: 0, Lon: 0},
		"Casa": {Lat: 0, Lon: 0.1},
	}}

	req := OptimizeDeliveryRequest{Origin: "HUB", Stops: []string{"Casa", "Casa"}}
	res, err := OptimizeDelivery(context.Background(), req, geocoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Stops) != 2 {
		t.Fatalf("duplicate addresses must stay distinct stops, got %d", len(res.Stops))
	}
	seen := map[int]bool{}
	for _, s := range res.Stops {
		seen[s.InputIndex] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("both input indices must appear, got %v", res.Stops)
	}
}
