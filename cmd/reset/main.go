package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Daymon_Go/internal/config"
	"github.com/osse101/Daymon_Go/internal/database"
)

// reset drops and recreates DB_NAME, then applies the migrations.
// Refuses to run against a production environment.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatalf("Refusing to reset database %s in %s", cfg.DBName, cfg.Environment)
	}

	ctx := context.Background()
	serverPool, err := database.NewPool(ctx, cfg.GetMaintenanceConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	ident := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		serverPool.Close()
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		serverPool.Close()
		log.Fatalf("Failed to create database: %v", err)
	}
	serverPool.Close()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("✅ Database reset complete!")
}
