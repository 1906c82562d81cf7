package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

// payloadCapture accepts any []byte argument and remembers it.
type payloadCapture struct{ b []byte }

func (c *payloadCapture) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if ok {
		c.b = b
	}
	return ok
}

func TestPostgresBackendRoundTrip(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	repo := NewRepository(NewPostgresBackend(conn))
	ctx := context.Background()
	selectState := `SELECT payload FROM kiosk_state WHERE key=\$1`

	mock.ExpectQuery(selectState).WithArgs(constants.KeyDrivers).WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	if _, found, err := repo.LoadDrivers(ctx); err != nil || found {
		t.Fatalf("LoadDrivers on empty table = %v, %v", found, err)
	}

	captured := &payloadCapture{}
	mock.ExpectExec(`INSERT INTO kiosk_state`).WithArgs(constants.KeyDrivers, captured).WillReturnResult(sqlmock.NewResult(0, 1))
	in := []models.Driver{{ID: "D1", Name: "Alice", Subcontractor: "Acme"}}
	if err := repo.SaveDrivers(ctx, in); err != nil {
		t.Fatalf("SaveDrivers: %v", err)
	}

	mock.ExpectQuery(selectState).WithArgs(constants.KeyDrivers).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(captured.b))
	out, found, err := repo.LoadDrivers(ctx)
	if err != nil || !found || len(out) != 1 || out[0] != in[0] {
		t.Fatalf("LoadDrivers = %+v, %v, %v", out, found, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresBackendErrorsAreTyped(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	repo := NewRepository(NewPostgresBackend(conn))
	ctx := context.Background()

	mock.ExpectQuery(`SELECT payload FROM kiosk_state`).WillReturnError(errors.New("connection refused"))
	var re *ReadError
	if _, err := repo.LoadCheckins(ctx); !errors.As(err, &re) || re.Key != constants.KeyCheckins {
		t.Fatalf("LoadCheckins err = %v, want *ReadError", err)
	}

	mock.ExpectExec(`INSERT INTO kiosk_state`).WillReturnError(errors.New("read-only transaction"))
	var we *WriteError
	if err := repo.SaveReports(ctx, nil); !errors.As(err, &we) || we.Key != constants.KeyReports {
		t.Fatalf("SaveReports err = %v, want *WriteError", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
