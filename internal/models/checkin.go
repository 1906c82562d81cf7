package models

import (
	"fmt"
	"time"
)

// EventKind - тип события на киоске.
type EventKind string

const (
	KindDeparture EventKind = "departure"
	KindReturn    EventKind = "return"
)

// Valid reports whether k is one of the known kinds.
func (k EventKind) Valid() bool {
	return k == KindDeparture || k == KindReturn
}

// CheckinEvent is one scan accepted by the kiosk. Driver is a copy of the roster
// entry at scan time, later roster edits do not change it.
type CheckinEvent struct {
	Driver     Driver    `json:"driver"`
	Timestamp  time.Time `json:"timestamp"`
	Kind       EventKind `json:"kind"`
	HasUniform *bool     `json:"has_uniform,omitempty"`
	Comment    string    `json:"comment,omitempty"`
}

// Key returns the (driver id, timestamp) identity of the event.
func (e CheckinEvent) Key() EventKey {
	return EventKey{DriverID: e.Driver.ID, Timestamp: e.Timestamp}
}

// EventKey identifies a CheckinEvent.
type EventKey struct {
	DriverID  string    `json:"driver_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Matches compares driver ids and instants (locations are ignored).
func (k EventKey) Matches(other EventKey) bool {
	return k.DriverID == other.DriverID && k.Timestamp.Equal(other.Timestamp)
}

func (k EventKey) String() string {
	return fmt.Sprintf("%s@%s", k.DriverID, k.Timestamp.Format(time.RFC3339Nano))
}
