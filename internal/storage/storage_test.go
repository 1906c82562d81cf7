package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

func TestRepositoryRoundTripKeepsTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryBackend())
	yes := true
	ts := time.Date(2024, 3, 12, 8, 0, 0, 123000000, time.FixedZone("CET", 3600))
	in := []models.CheckinEvent{{
		Driver:     models.Driver{ID: "D1", Name: "Alice"},
		Timestamp:  ts,
		Kind:       models.KindDeparture,
		HasUniform: &yes,
	}}
	if err := repo.SaveCheckins(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err := repo.LoadCheckins(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !out[0].Timestamp.Equal(ts) || out[0].HasUniform == nil || !*out[0].HasUniform {
		t.Errorf("unexpected events %+v", out)
	}
}

func TestRepositoryMissingKeys(t *testing.T) {
	repo := NewRepository(NewMemoryBackend())
	drivers, found, err := repo.LoadDrivers(context.Background())
	if err != nil || found || drivers != nil {
		t.Fatalf("LoadDrivers = %v, %v, %v", drivers, found, err)
	}
	events, err := repo.LoadCheckins(context.Background())
	if err != nil || len(events) != 0 {
		t.Fatalf("LoadCheckins = %v, %v", events, err)
	}
}

func TestRepositoryReadErrors(t *testing.T) {
	tests := map[string][]byte{
		"malformed json":  []byte(`{not json`),
		"unknown version": []byte(`{"version": 99, "data": []}`),
		"bad data":        []byte(`{"version": 1, "data": {"a": 1}}`),
		"no data":         []byte(`{"version": 1}`),
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			mem := NewMemoryBackend()
			mem.Set(constants.KeyReports, payload)
			_, err := NewRepository(mem).LoadReports(context.Background())
			var re *ReadError
			if !errors.As(err, &re) || re.Key != constants.KeyReports {
				t.Fatalf("expected ReadError, got %v", err)
			}
		})
	}
}

func TestRepositoryWriteError(t *testing.T) {
	mem := NewMemoryBackend()
	mem.PutError = errors.New("quota exceeded")
	err := NewRepository(mem).SaveDrivers(context.Background(), nil)
	var we *WriteError
	if !errors.As(err, &we) || we.Key != constants.KeyDrivers {
		t.Fatalf("expected WriteError, got %v", err)
	}
}

func TestEmptyCollectionsEncodeAsArray(t *testing.T) {
	mem := NewMemoryBackend()
	if err := NewRepository(mem).SaveReports(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	payload, _ := mem.Get(context.Background(), constants.KeyReports)
	var reports []models.IncidentReport
	if err := Decode(payload, &reports); err != nil || reports == nil {
		t.Fatalf("Decode = %v, %v", reports, err)
	}
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fb.Get(ctx, constants.KeyDrivers); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	repo := NewRepository(fb)
	drivers := []models.Driver{{ID: "D1", Name: "Alice", Subcontractor: "Sub"}}
	if err := repo.SaveDrivers(ctx, drivers); err != nil {
		t.Fatal(err)
	}
	got, found, err := repo.LoadDrivers(ctx)
	if err != nil || !found || len(got) != 1 || got[0] != drivers[0] {
		t.Fatalf("LoadDrivers = %v, %v, %v", got, found, err)
	}
	if err := fb.Put(ctx, "../escape", []byte("x")); err == nil {
		t.Fatal("path traversal key must be rejected")
	}
}
