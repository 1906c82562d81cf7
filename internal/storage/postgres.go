package storage

import (
	"context"
	"database/sql"
	"errors"

	"DriverDesk/internal/db"
)

// PostgresBackend stores documents in the kiosk_state table.
type PostgresBackend struct {
	conn *sql.DB
}

// NewPostgresBackend wraps an open connection pool (see db.Open).
func NewPostgresBackend(conn *sql.DB) *PostgresBackend {
	return &PostgresBackend{conn: conn}
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := db.GetState(ctx, p.conn, key)
	if errors.Is(err, db.ErrStateNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (p *PostgresBackend) Put(ctx context.Context, key string, payload []byte) error {
	return db.PutState(ctx, p.conn, key, payload)
}

func (p *PostgresBackend) Close() error { return p.conn.Close() }
