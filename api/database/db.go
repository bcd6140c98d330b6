package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection with a ping.
// The returned pool is sized for the low write rate of the webhook journal.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database url is empty")
	}
	db, err := sql.Open("postgres", withBinaryParameters(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Few connections keep PgBouncer transaction pooling happy.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// withBinaryParameters turns on lib/pq's binary_parameters unless the DSN already sets it.
// Parameters are then sent with the query instead of through an unnamed prepared statement,
// which PgBouncer transaction pooling cannot route. Only lib/pq driver settings may be added
// here: any other key is forwarded to the server as a startup parameter and rejected.
func withBinaryParameters(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.Contains(lower, "binary_parameters=") {
		return dsn
	}
	if !strings.HasPrefix(lower, "postgres://") && !strings.HasPrefix(lower, "postgresql://") {
		return strings.TrimSpace(dsn) + " binary_parameters=yes"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "binary_parameters=yes"
}
