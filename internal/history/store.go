// Package history is the optional audit trail: a Postgres-backed log of
// past planning requests and their outcomes. It is never consulted by the
// core planner — the core stays a pure function per request — and a
// history-store failure degrades to "history unavailable" rather than
// failing the planning call that triggered it.
package history

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/result"
)

// Store persists planning requests and their outcomes.
type Store struct {
	db *sql.DB
}

// Record is one stored plan.
type Record struct {
	ID          int64
	RequestedAt time.Time
	LoadMW      float64
	Feasible    bool
	Allocation  []result.Allocation
	Detail      string
}

// Open connects to Postgres at dsn and ensures the history table exists.
// An empty dsn disables the store: every method becomes a harmless no-op.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return &Store{}, nil
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, err
	}
	log.Printf("History: connected to Postgres")
	return &Store{db: db}, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS dispatch_plans (
	id           BIGSERIAL PRIMARY KEY,
	requested_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	load_mw      DOUBLE PRECISION NOT NULL,
	feasible     BOOLEAN NOT NULL,
	allocation   JSONB,
	detail       TEXT
)`

// Save records the outcome of one planning call. Errors are logged, never
// returned: a broken history store must never fail a planning request.
func (s *Store) Save(ctx context.Context, grid model.PowerGrid, alloc []result.Allocation, planErr error) {
	if s == nil || s.db == nil {
		return
	}

	feasible := planErr == nil
	detail := ""
	if planErr != nil {
		detail = planErr.Error()
	}

	allocJSON, err := marshalAllocation(alloc)
	if err != nil {
		log.Printf("History: marshal allocation: %v", err)
		return
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dispatch_plans (load_mw, feasible, allocation, detail) VALUES ($1, $2, $3, $4)`,
		grid.LoadMW, feasible, allocJSON, detail,
	)
	if err != nil {
		log.Printf("History: save failed: %v", err)
	}
}

// Recent returns the most recent limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, requested_at, load_mw, feasible, allocation, detail
		 FROM dispatch_plans ORDER BY requested_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var allocJSON []byte
		if err := rows.Scan(&r.ID, &r.RequestedAt, &r.LoadMW, &r.Feasible, &allocJSON, &r.Detail); err != nil {
			return nil, err
		}
		alloc, err := unmarshalAllocation(allocJSON)
		if err != nil {
			return nil, err
		}
		r.Allocation = alloc
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying connection pool, if any.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
