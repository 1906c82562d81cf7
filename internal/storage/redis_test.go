package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

func newTestRedisBackend(t *testing.T) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b := NewRedisBackend(rdb, "kiosk:")
	t.Cleanup(func() { _ = b.Close() })
	return b, mr
}

func TestRedisBackendPrefixesKeys(t *testing.T) {
	b, mr := newTestRedisBackend(t)
	ctx := context.Background()

	if _, err := b.Get(ctx, constants.KeyDrivers); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on missing key = %v, want ErrNotFound", err)
	}
	if err := b.Put(ctx, constants.KeyDrivers, []byte(`{"version":1}`)); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("kiosk:" + constants.KeyDrivers) {
		t.Fatalf("key not prefixed, have %v", mr.Keys())
	}
	mr.CheckGet(t, "kiosk:"+constants.KeyDrivers, `{"version":1}`)

	got, err := b.Get(ctx, constants.KeyDrivers)
	if err != nil || string(got) != `{"version":1}` {
		t.Fatalf("Get = %q, %v", got, err)
	}
}

func TestRedisBackendRepositoryRoundTrip(t *testing.T) {
	b, mr := newTestRedisBackend(t)
	repo := NewRepository(b)
	ctx := context.Background()

	reports, err := repo.LoadReports(ctx)
	if err != nil || len(reports) != 0 {
		t.Fatalf("LoadReports on empty redis = %v, %v", reports, err)
	}

	in := []models.Driver{{ID: "D1", Name: "Alice", Subcontractor: "Acme", Tour: "T1"}}
	if err := repo.SaveDrivers(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, found, err := repo.LoadDrivers(ctx)
	if err != nil || !found || len(out) != 1 || out[0] != in[0] {
		t.Fatalf("LoadDrivers = %+v, %v, %v", out, found, err)
	}

	// a corrupted value is a read error, not an empty collection
	mr.Set("kiosk:"+constants.KeyCheckins, "not json")
	var re *ReadError
	if _, err := repo.LoadCheckins(ctx); !errors.As(err, &re) {
		t.Fatalf("LoadCheckins err = %v, want *ReadError", err)
	}

	mr.Close()
	var we *WriteError
	if err := repo.SaveDrivers(ctx, in); !errors.As(err, &we) {
		t.Fatalf("SaveDrivers on closed server = %v, want *WriteError", err)
	}
}
