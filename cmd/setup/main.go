package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pehenyshka/piratecards/internal/catalog"
	"github.com/pehenyshka/piratecards/internal/config"
	"github.com/pehenyshka/piratecards/internal/database"
	"github.com/pehenyshka/piratecards/internal/database/postgres"
	"github.com/pehenyshka/piratecards/internal/database/schema"
)

// setup creates the database if missing, applies migrations, and seeds
// the card catalog. Safe to run repeatedly.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	if err := runMigrations(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seedCatalog(ctx, cfg); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase connects to the default 'postgres' database and creates
// the target database when it does not exist.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}

// runMigrations applies all pending goose migrations from the migrations
// directory.
func runMigrations(cfg *config.Config) error {
	db, err := goose.OpenDBWithDriver("pgx", cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	fmt.Println("Migrations applied.")
	return nil
}

// seedCatalog loads the fixed card set into an empty cards table.
func seedCatalog(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	catalogService := catalog.NewService(postgres.NewCardRepository(pool))
	if err := catalogService.Seed(ctx, schema.SeedCards()); err != nil {
		return fmt.Errorf("failed to seed card catalog: %w", err)
	}

	fmt.Println("Card catalog seeded.")
	return nil
}
