package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			allergies TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// FOOD HISTORY
	// -------------------------------
	historyTableSQL := `
		CREATE TABLE IF NOT EXISTS food_history (
			analysis_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			food_name VARCHAR(255) NOT NULL,
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			allergens_detected TEXT[] NOT NULL DEFAULT '{}',
			safe_to_eat BOOLEAN NOT NULL,
			image_base64 TEXT NOT NULL,
			image_url VARCHAR(500),
			analyzed_at TIMESTAMPTZ NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := pool.Exec(ctx, historyTableSQL); err != nil {
		return err
	}

	// History is always read newest-first per user.
	historyIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_food_history_user_analyzed
		ON food_history (user_id, analyzed_at DESC)
	`
	if _, err := pool.Exec(ctx, historyIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
