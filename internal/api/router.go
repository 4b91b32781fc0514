package api

import (
	"net/http"

	"be-route-service/internal/api/handlers"
	"be-route-service/internal/ports"
)

// Config carries the policy values the handlers need.
type Config struct {
	DefaultOrigin     string
	MaxSegmentEntries int
	MaxReversals      int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, cfg Config) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder:          geocoder,
		DefaultOrigin:     cfg.DefaultOrigin,
		MaxSegmentEntries: cfg.MaxSegmentEntries,
		MaxReversals:      cfg.MaxReversals,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Optimize)

	return requestIDMiddleware(loggingMiddleware(mux))
}
