package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"DriverDesk/internal/constants"
)

// envelope is the on-disk shape of every persisted collection.
type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps v into a versioned envelope.
func Encode(v any, now time.Time) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: constants.SchemaVersion, SavedAt: now.UTC(), Data: data})
}

// Decode unwraps an envelope into dst. Unknown versions are rejected.
func Decode(payload []byte, dst any) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("malformed envelope: %w", err)
	}
	if env.Version != constants.SchemaVersion {
		return fmt.Errorf("unsupported schema version %d", env.Version)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("envelope has no data")
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("malformed data: %w", err)
	}
	return nil
}
