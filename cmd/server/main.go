package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"quicktrip-api/internal/adapters/cache"
	"quicktrip-api/internal/adapters/directions"
	"quicktrip-api/internal/adapters/repositories"
	"quicktrip-api/internal/api"
	"quicktrip-api/internal/platform/db"
	"quicktrip-api/internal/ports"
	"quicktrip-api/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (route cache stores, OSRM, transit) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	osrmBaseURL := getEnv("OSRM_BASE_URL", "https://router.project-osrm.org")
	transitBaseURL := getEnv("TRANSIT_API_URL", "https://maps.googleapis.com/maps/api/directions/json")

	transitKey := os.Getenv("TRANSIT_API_KEY")
	if strings.TrimSpace(transitKey) == "" {
		log.Fatal("TRANSIT_API_KEY is required")
	}

	osrm, err := directions.NewOSRMProvider(osrmBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	transit, err := directions.NewTransitProvider(transitBaseURL, transitKey)
	if err != nil {
		log.Fatal(err)
	}

	var provider ports.RouteProvider = directions.NewModeDispatcher(osrm, transit)

	// Leg results are cached in front of the providers; the store is
	// selected per deploy through CACHE_DRIVER.
	store, closeStore, err := buildRouteCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeStore != nil {
		defer closeStore()
	}
	if store != nil {
		provider = directions.NewCachedProvider(provider, store)
	}

	repo := repositories.NewMemoryItineraryRepository()
	trips := services.NewTripService(repo, provider)
	router := api.NewRouter(repo, trips)

	allowedOrigins := strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",")
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
	)

	// Timeouts are tuned for cold-cache aggregation runs (external API latency).
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           cors(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server listening addr=:%s", port)
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildRouteCache selects the route cache store from CACHE_DRIVER:
// memory (default), redis, postgres, sqlite, or off.
func buildRouteCache() (ports.RouteCache, func(), error) {
	driver := getEnv("CACHE_DRIVER", "memory")

	switch driver {
	case "off":
		return nil, nil, nil

	case "memory":
		return cache.NewMemoryRouteCache(10000, cache.DefaultTTL), nil, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("build route cache: ping redis: %w", err)
		}
		return cache.NewRedisRouteCache(client, cache.DefaultTTL), func() { client.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, errors.New("build route cache: DATABASE_URL is required for the postgres driver")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("build route cache: %w", err)
		}
		if err := cache.InitPostgresSchema(pg); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("build route cache: %w", err)
		}
		return cache.NewSQLRouteCache(pg, cache.DefaultTTL), func() { pg.Close() }, nil

	case "sqlite":
		path := getEnv("SQLITE_PATH", "data/app.db")
		lite, err := db.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("build route cache: %w", err)
		}
		if err := cache.InitSqliteSchema(lite); err != nil {
			lite.Close()
			return nil, nil, fmt.Errorf("build route cache: %w", err)
		}
		return cache.NewSqliteRouteCache(lite, cache.DefaultTTL), func() { lite.Close() }, nil
	}

	return nil, nil, fmt.Errorf("build route cache: unknown CACHE_DRIVER %q", driver)
}
