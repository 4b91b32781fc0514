package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"be-route-service/internal/api/dto"
	"be-route-service/internal/domain"
	"be-route-service/internal/ports"
	"be-route-service/internal/services"
)

// RouteHandler exposes the route optimization endpoint.
type RouteHandler struct {
	Geocoder ports.Geocoder

	// DefaultOrigin is used when a request omits its origin.
	DefaultOrigin string

	// MaxSegmentEntries and MaxReversals override engine policy when > 0.
	MaxSegmentEntries int
	MaxReversals      int
}

// Optimize orders the requested stops into a travel-efficient route and
// returns the ordered stops, segments, and map links.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = strings.TrimSpace(h.DefaultOrigin)
	}
	if origin == "" {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}

	svcReq := services.OptimizeDeliveryRequest{
		Origin:            origin,
		Stops:             req.Stops,
		MaxSegmentEntries: h.MaxSegmentEntries,
		MaxReversals:      h.MaxReversals,
	}

	res, err := services.OptimizeDelivery(r.Context(), svcReq, h.Geocoder)
	if err != nil {
		h.writeOptimizeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(res))
}

// Map typed failures to status codes; anything unexpected is a 500 with
// the detail kept out of the response body.
func (h *RouteHandler) writeOptimizeError(w http.ResponseWriter, r *http.Request, err error) {
	var inv *domain.InvalidInputError
	if errors.As(err, &inv) {
		writeError(w, r, http.StatusBadRequest, inv.Error())
		return
	}

	var empty *domain.EmptyAddressError
	if errors.As(err, &empty) {
		writeError(w, r, http.StatusBadRequest, empty.Error())
		return
	}

	var nf *ports.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, r, http.StatusUnprocessableEntity, nf.Error())
		return
	}

	var rl *ports.RateLimitedError
	if errors.As(err, &rl) {
		writeError(w, r, http.StatusServiceUnavailable, "geocoding service is rate limited, try again later")
		return
	}

	log.Printf("optimize route failed: %v", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func toResponse(res *services.OptimizeDeliveryResult) dto.OptimizeRouteResponse {
	out := dto.OptimizeRouteResponse{
		Origin:          toPoint(res.Origin),
		Stops:           make([]dto.StopResponse, 0, len(res.Stops)),
		Segments:        make([]dto.SegmentResponse, 0, len(res.Segments)),
		TotalDistanceKm: res.TotalDistanceKm,
		Converged:       res.Converged,
	}

	for _, s := range res.Stops {
		out.Stops = append(out.Stops, dto.StopResponse{
			Position:   s.Position,
			InputIndex: s.InputIndex,
			Label:      s.Label,
			Point:      toPoint(s.Point),
		})
	}

	for i, seg := range res.Segments {
		entries := make([]dto.WaypointResponse, 0, len(seg.Entries))
		for _, e := range seg.Entries {
			entries = append(entries, dto.WaypointResponse{
				Label: e.Label,
				Point: toPoint(e.Point),
			})
		}
		out.Segments = append(out.Segments, dto.SegmentResponse{
			Entries: entries,
			Link:    res.Links[i],
		})
	}

	return out
}

func toPoint(p domain.Point) dto.PointResponse {
	return dto.PointResponse{Lat: p.Lat, Lon: p.Lon}
}
