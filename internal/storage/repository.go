package storage

import (
	"context"
	"errors"
	"time"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

// Repository reads and writes the three kiosk collections.
type Repository struct {
	backend Backend
	now     func() time.Time
}

// NewRepository wraps a backend.
func NewRepository(b Backend) *Repository {
	return &Repository{backend: b, now: time.Now}
}

// Close closes the backend.
func (r *Repository) Close() error { return r.backend.Close() }

// load returns found=false without error when the key was never written.
func (r *Repository) load(ctx context.Context, key string, dst any) (bool, error) {
	payload, err := r.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &ReadError{Key: key, Err: err}
	}
	if err := Decode(payload, dst); err != nil {
		return false, &ReadError{Key: key, Err: err}
	}
	return true, nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	payload, err := Encode(v, r.now())
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	if err := r.backend.Put(ctx, key, payload); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// LoadDrivers returns the saved roster. found is false when nothing was saved.
func (r *Repository) LoadDrivers(ctx context.Context) (drivers []models.Driver, found bool, err error) {
	found, err = r.load(ctx, constants.KeyDrivers, &drivers)
	return drivers, found, err
}

// SaveDrivers replaces the saved roster.
func (r *Repository) SaveDrivers(ctx context.Context, drivers []models.Driver) error {
	return r.save(ctx, constants.KeyDrivers, nonNil(drivers))
}

// LoadCheckins returns the saved event log.
func (r *Repository) LoadCheckins(ctx context.Context) ([]models.CheckinEvent, error) {
	var events []models.CheckinEvent
	_, err := r.load(ctx, constants.KeyCheckins, &events)
	return events, err
}

// SaveCheckins replaces the saved event log.
func (r *Repository) SaveCheckins(ctx context.Context, events []models.CheckinEvent) error {
	return r.save(ctx, constants.KeyCheckins, nonNil(events))
}

// LoadReports returns the saved incident reports.
func (r *Repository) LoadReports(ctx context.Context) ([]models.IncidentReport, error) {
	var reports []models.IncidentReport
	_, err := r.load(ctx, constants.KeyReports, &reports)
	return reports, err
}

// SaveReports replaces the saved incident reports.
func (r *Repository) SaveReports(ctx context.Context, reports []models.IncidentReport) error {
	return r.save(ctx, constants.KeyReports, nonNil(reports))
}

// nonNil makes empty collections serialize as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
