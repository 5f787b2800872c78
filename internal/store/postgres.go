package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
)

// PostgresStore keeps one row per semester with the snapshot as a JSONB
// document. Saves are single-statement upserts, so concurrent readers
// never see a half-written roster/enrollment pair.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to Postgres and ensures the semesters table
// exists.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB config: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS semesters (
			id         TEXT PRIMARY KEY,
			snapshot   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create semesters table: %w", err)
	}
	return nil
}

// List returns all semesters, oldest first.
func (s *PostgresStore) List(ctx context.Context) ([]enrollment.Semester, error) {
	rows, err := s.pool.Query(ctx, `SELECT snapshot FROM semesters ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query semesters: %w", err)
	}
	defer rows.Close()

	semesters := []enrollment.Semester{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan semester row: %w", err)
		}
		var sem enrollment.Semester
		if err := json.Unmarshal(doc, &sem); err != nil {
			return nil, fmt.Errorf("failed to decode semester snapshot: %w", err)
		}
		semesters = append(semesters, sem)
	}
	return semesters, rows.Err()
}

// Get returns one semester snapshot.
func (s *PostgresStore) Get(ctx context.Context, id string) (enrollment.Semester, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT snapshot FROM semesters WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return enrollment.Semester{}, ErrNotFound
	}
	if err != nil {
		return enrollment.Semester{}, fmt.Errorf("failed to get semester %s: %w", id, err)
	}

	var sem enrollment.Semester
	if err := json.Unmarshal(doc, &sem); err != nil {
		return enrollment.Semester{}, fmt.Errorf("failed to decode semester %s: %w", id, err)
	}
	return sem, nil
}

// Save upserts the full semester document in one statement.
func (s *PostgresStore) Save(ctx context.Context, sem enrollment.Semester) error {
	doc, err := json.Marshal(sem)
	if err != nil {
		return fmt.Errorf("failed to encode semester %s: %w", sem.ID, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO semesters (id, snapshot)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`, sem.ID, doc)
	if err != nil {
		return fmt.Errorf("failed to save semester %s: %w", sem.ID, err)
	}
	return nil
}

// Delete removes a semester row.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete semester %s: %w", id, err)
	}
	return nil
}

// Health checks the database connection.
func (s *PostgresStore) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
