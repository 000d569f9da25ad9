package main

import (
	"airship-delivery/internal/adapters/ledger"
	"airship-delivery/internal/config"
	"airship-delivery/internal/platform/db"
	"context"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dbtool prepares a Postgres database for LEDGER_DRIVER=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", config.Get("LEDGER_DSN", ""))
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Initializing captains_log schema...")
	if err := ledger.InitPostgresSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
