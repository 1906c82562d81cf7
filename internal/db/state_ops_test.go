package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetState(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT payload FROM kiosk_state WHERE key=$1`)

	mock.ExpectQuery(query).WithArgs("driverdesk.drivers").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"version":1}`)))
	got, err := GetState(ctx, conn, "driverdesk.drivers")
	if err != nil || string(got) != `{"version":1}` {
		t.Fatalf("GetState = %q, %v", got, err)
	}

	mock.ExpectQuery(query).WithArgs("driverdesk.reports").WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	if _, err := GetState(ctx, conn, "driverdesk.reports"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("missing key err = %v, want ErrStateNotFound", err)
	}

	boom := errors.New("connection reset")
	mock.ExpectQuery(query).WithArgs("driverdesk.checkins").WillReturnError(boom)
	if _, err := GetState(ctx, conn, "driverdesk.checkins"); !errors.Is(err, boom) {
		t.Fatalf("driver error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPutStateUpserts(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	payload := []byte(`{"version":1,"data":[]}`)
	mock.ExpectExec(`INSERT INTO kiosk_state \(key, payload, updated_at\) VALUES \(\$1, \$2, NOW\(\)\) ON CONFLICT \(key\) DO UPDATE SET payload = EXCLUDED\.payload`).
		WithArgs("driverdesk.checkins", payload).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := PutState(context.Background(), conn, "driverdesk.checkins", payload); err != nil {
		t.Fatalf("PutState: %v", err)
	}

	mock.ExpectExec(`INSERT INTO kiosk_state`).WillReturnError(errors.New("disk full"))
	if err := PutState(context.Background(), conn, "driverdesk.checkins", payload); err == nil {
		t.Fatal("PutState should surface the driver error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestEnsureSchema(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kiosk_state`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	if err := EnsureSchema(context.Background(), conn); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
