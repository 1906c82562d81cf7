package db

import (
	"context"
	"database/sql"
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrStateNotFound - ключ ещё не сохранялся.
var ErrStateNotFound = errors.New("state key not found")

// GetState возвращает сохранённый документ по ключу.
func GetState(ctx context.Context, conn *sql.DB, key string) ([]byte, error) {
	var payload []byte
	err := conn.QueryRowContext(ctx, `SELECT payload FROM kiosk_state WHERE key=$1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		log.Errorf("GetState: ошибка чтения ключа %s: %v", key, err)
		return nil, err
	}
	return payload, nil
}

// PutState сохраняет документ целиком (upsert).
func PutState(ctx context.Context, conn *sql.DB, key string, payload []byte) error {
	_, err := conn.ExecContext(ctx, `
        INSERT INTO kiosk_state (key, payload, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`,
		key, payload)
	if err != nil {
		log.Errorf("PutState: ошибка записи ключа %s: %v", key, err)
		return err
	}
	return nil
}

