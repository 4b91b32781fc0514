package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"be-route-service/internal/adapters/cache"
	"be-route-service/internal/adapters/geocode"
	"be-route-service/internal/api"
	"be-route-service/internal/config"
	"be-route-service/internal/platform/db"
	"be-route-service/internal/ports"
	"be-route-service/internal/routing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the geocoder and its cache backend behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	cityHint := config.Get("CITY_HINT", "")
	nominatimURL := config.Get("NOMINATIM_URL", "")
	defaultOrigin := config.Get("DEFAULT_ORIGIN", "")

	geocoder, closeCache, err := buildGeocoder(cityHint, nominatimURL)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	router := api.NewRouter(geocoder, api.Config{
		DefaultOrigin:     defaultOrigin,
		MaxSegmentEntries: config.GetInt("MAX_SEGMENT_ENTRIES", routing.DefaultMaxSegmentEntries),
		MaxReversals:      config.GetInt("TWO_OPT_MAX_ATTEMPTS", 0),
	})

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocoder assembles the Nominatim client with the configured cache
// backend. The returned func releases whatever the backend holds open.
func buildGeocoder(cityHint, nominatimURL string) (ports.Geocoder, func(), error) {
	nominatim := geocode.NewNominatimGeocoder(nominatimURL, cityHint)
	backend := config.Get("CACHE_BACKEND", "sqlite")

	switch backend {
	case "none":
		return nominatim, func() {}, nil

	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		sqliteDB, err := openSqlite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(sqliteDB); err != nil {
			sqliteDB.Close()
			return nil, nil, err
		}
		cached := geocode.NewCachedGeocoder(nominatim, cache.NewSqliteGeocodeCache(sqliteDB))
		return cached, func() { sqliteDB.Close() }, nil

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres cache backend")
		}
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		cached := geocode.NewCachedGeocoder(nominatim, cache.NewSQLGeocodeCache(pgDB))
		return cached, func() { pgDB.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		ttl := config.GetDuration("GEOCODE_CACHE_TTL", 30*24*time.Hour)
		cached := geocode.NewCachedGeocoder(nominatim, cache.NewRedisGeocodeCache(client, ttl))
		return cached, func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}
