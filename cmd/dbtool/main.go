package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"quicktrip-api/internal/adapters/cache"
	"quicktrip-api/internal/config"
	"quicktrip-api/internal/platform/db"
)

// dbtool initializes the route cache schema for SQL-backed cache drivers.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("CACHE_DRIVER", "postgres")

	var conn *sql.DB
	var initSchema func(*sql.DB) error

	switch driver {
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		conn = pg
		initSchema = cache.InitPostgresSchema

	case "sqlite":
		lite, err := db.OpenSQLite(config.Get("SQLITE_PATH", "data/app.db"))
		if err != nil {
			log.Fatal(err)
		}
		conn = lite
		initSchema = cache.InitSqliteSchema

	default:
		log.Fatalf("unsupported CACHE_DRIVER %q (want postgres or sqlite)", driver)
	}
	defer conn.Close()

	log.Println("Initializing route cache schema...")
	if err := initSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
