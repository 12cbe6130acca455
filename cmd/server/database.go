package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/phrazzld/tasker-api/internal/config"
)

const (
	dbPingTimeout   = 5 * time.Second
	dbMaxOpenConns  = 25
	dbMaxIdleConns  = 5
	dbConnMaxIdle   = 5 * time.Minute
	dbConnMaxLife   = 30 * time.Minute
)

// openDatabase opens the PostgreSQL connection pool and verifies
// connectivity with a bounded ping. The pool is the only process-wide
// state; it is created once here and injected into the stores.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxIdleTime(dbConnMaxIdle)
	db.SetConnMaxLifetime(dbConnMaxLife)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("ping failed (%v) and close failed: %w", err, cerr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
