package attendance

import (
	"errors"
	"testing"
	"time"

	"DriverDesk/internal/models"
)

var paris = time.FixedZone("CET", 3600)

func at(day, hour, min int) time.Time {
	return time.Date(2024, time.March, day, hour, min, 0, 0, paris)
}

func ev(id string, kind models.EventKind, ts time.Time) models.CheckinEvent {
	return models.CheckinEvent{Driver: models.Driver{ID: id, Name: "Driver " + id}, Timestamp: ts, Kind: kind}
}

var roster = []models.Driver{
	{ID: "D1", Name: "Alice Martin", Subcontractor: "TransExpress", Tour: "T01"},
	{ID: "D2", Name: "Bruno Petit", Subcontractor: "Rapid'Colis", Tour: "T02"},
}

func TestSameDayUsesCalendarNotRollingWindow(t *testing.T) {
	now := at(12, 0, 30)
	if SameDay(at(11, 23, 59), now) {
		t.Fatal("event at 23:59 the day before must not be same day")
	}
	if !SameDay(at(12, 23, 59), at(12, 0, 0)) {
		t.Fatal("23:59 and 00:00 of the same day are the same day")
	}
	// 23:30 UTC on the 11th is 00:30 on the 12th in CET.
	utc := time.Date(2024, time.March, 11, 23, 30, 0, 0, time.UTC)
	if !SameDay(utc, now) {
		t.Fatal("timestamps must be compared in now's location")
	}
}

func TestStatusIsLastEventWins(t *testing.T) {
	now := at(12, 18, 0)
	tests := []struct {
		name   string
		events []models.CheckinEvent
		want   Status
	}{
		{"no events", nil, StatusNeutral},
		{"only yesterday", []models.CheckinEvent{ev("D1", models.KindDeparture, at(11, 8, 0))}, StatusNeutral},
		{"departed", []models.CheckinEvent{ev("D1", models.KindDeparture, at(12, 8, 0))}, StatusDeparted},
		{"returned", []models.CheckinEvent{
			ev("D1", models.KindDeparture, at(12, 8, 0)),
			ev("D1", models.KindReturn, at(12, 17, 0)),
		}, StatusReturned},
		{"unordered log", []models.CheckinEvent{
			ev("D1", models.KindReturn, at(12, 17, 0)),
			ev("D1", models.KindDeparture, at(12, 18, 0)),
			ev("D1", models.KindDeparture, at(12, 8, 0)),
		}, StatusDeparted},
		{"other driver ignored", []models.CheckinEvent{
			ev("D2", models.KindDeparture, at(12, 9, 0)),
		}, StatusNeutral},
		{"equal timestamps: last appended wins", []models.CheckinEvent{
			ev("D1", models.KindDeparture, at(12, 9, 0)),
			ev("D1", models.KindReturn, at(12, 9, 0)),
		}, StatusReturned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.events, "D1", now); got != tt.want {
				t.Errorf("StatusOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPendingReturns(t *testing.T) {
	now := at(12, 18, 0)
	events := []models.CheckinEvent{
		ev("D3", models.KindDeparture, at(11, 8, 0)), // yesterday, never returned
		ev("D2", models.KindDeparture, at(12, 9, 0)),
		ev("D1", models.KindDeparture, at(12, 8, 0)),
		ev("D1", models.KindReturn, at(12, 17, 0)),
		ev("D4", models.KindDeparture, at(12, 7, 0)),
	}
	pending := PendingReturns(events, now)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending drivers, got %d", len(pending))
	}
	if pending[0].Driver.ID != "D4" || pending[1].Driver.ID != "D2" {
		t.Errorf("unexpected order: %s, %s", pending[0].Driver.ID, pending[1].Driver.ID)
	}

	// D1 departs again: back in the set.
	events = append(events, ev("D1", models.KindDeparture, at(12, 17, 30)))
	pending = PendingReturns(events, now)
	if len(pending) != 3 || pending[2].Driver.ID != "D1" {
		t.Fatalf("D1 should be pending again, got %+v", pending)
	}
}

func TestCheckSequence(t *testing.T) {
	tests := []struct {
		name      string
		requested models.EventKind
		last      models.EventKind
		hasLast   bool
		want      error
	}{
		{"first departure", models.KindDeparture, "", false, nil},
		{"departure after return", models.KindDeparture, models.KindReturn, true, nil},
		{"double departure", models.KindDeparture, models.KindDeparture, true, ErrDuplicateDeparture},
		{"return after departure", models.KindReturn, models.KindDeparture, true, nil},
		{"orphan return", models.KindReturn, "", false, ErrReturnWithoutDeparture},
		{"double return", models.KindReturn, models.KindReturn, true, ErrReturnWithoutDeparture},
		{"bad kind", models.EventKind("lunch"), "", false, ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckSequence(tt.requested, tt.last, tt.hasLast); !errors.Is(err, tt.want) {
				t.Errorf("CheckSequence = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAcceptScenario(t *testing.T) {
	var log []models.CheckinEvent
	yes := true

	// 1. departure at 08:00 with uniform
	e, err := Accept(roster, log, ScanRequest{DriverID: "D1", Kind: models.KindDeparture, HasUniform: &yes, Comment: "ok"}, at(12, 8, 0))
	if err != nil {
		t.Fatalf("departure rejected: %v", err)
	}
	if e.HasUniform == nil || !*e.HasUniform || e.Comment != "ok" || e.Driver.Name != "Alice Martin" {
		t.Fatalf("unexpected event %+v", e)
	}
	log = append(log, e)
	if p := PendingReturns(log, at(12, 8, 1)); len(p) != 1 || p[0].Driver.ID != "D1" {
		t.Fatalf("D1 should be pending, got %+v", p)
	}

	// 2. second departure at 08:05
	if _, err := Accept(roster, log, ScanRequest{DriverID: "D1", Kind: models.KindDeparture}, at(12, 8, 5)); !errors.Is(err, ErrDuplicateDeparture) {
		t.Fatalf("expected ErrDuplicateDeparture, got %v", err)
	}

	// 3. return at 17:00, uniform and comment are dropped
	e, err = Accept(roster, log, ScanRequest{DriverID: " D1 ", Kind: models.KindReturn, HasUniform: &yes, Comment: "x"}, at(12, 17, 0))
	if err != nil {
		t.Fatalf("return rejected: %v", err)
	}
	if e.HasUniform != nil || e.Comment != "" {
		t.Errorf("return must not carry uniform/comment: %+v", e)
	}
	log = append(log, e)
	if p := PendingReturns(log, at(12, 17, 1)); len(p) != 0 {
		t.Fatalf("no driver should be pending, got %+v", p)
	}

	// 4. unknown id
	if _, err := Accept(roster, log, ScanRequest{DriverID: "ZZZ", Kind: models.KindDeparture}, at(12, 17, 2)); !errors.Is(err, ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestAcceptRejectsReturnFromYesterdayDeparture(t *testing.T) {
	log := []models.CheckinEvent{ev("D2", models.KindDeparture, at(11, 8, 0))}
	if _, err := Accept(roster, log, ScanRequest{DriverID: "D2", Kind: models.KindReturn}, at(12, 8, 0)); !errors.Is(err, ErrReturnWithoutDeparture) {
		t.Fatalf("expected ErrReturnWithoutDeparture, got %v", err)
	}
	if _, err := Accept(roster, log, ScanRequest{DriverID: "D2", Kind: models.KindDeparture}, at(12, 8, 0)); err != nil {
		t.Fatalf("yesterday's open departure must not block today: %v", err)
	}
}

func TestAcceptTruncatesToMillisecond(t *testing.T) {
	now := at(12, 8, 0).Add(1234567 * time.Nanosecond)
	e, err := Accept(roster, nil, ScanRequest{DriverID: "D1", Kind: models.KindDeparture}, now)
	if err != nil {
		t.Fatal(err)
	}
	if e.Timestamp.Nanosecond() != 1000000 {
		t.Errorf("timestamp not truncated to ms: %v", e.Timestamp)
	}
}

func TestSessions(t *testing.T) {
	events := []models.CheckinEvent{
		ev("D1", models.KindReturn, at(12, 17, 0)),
		ev("D1", models.KindDeparture, at(12, 8, 0)),
		ev("D2", models.KindDeparture, at(12, 9, 0)),
		ev("D2", models.KindReturn, at(13, 1, 0)), // next day: does not close
		ev("D3", models.KindReturn, at(12, 10, 0)), // no departure
	}
	sessions := Sessions(events, paris)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if !sessions[0].Completed() || sessions[0].Duration() != 9*time.Hour {
		t.Errorf("D1 session: %+v", sessions[0])
	}
	if sessions[1].Completed() {
		t.Errorf("D2 session must stay open: %+v", sessions[1])
	}
}

func TestSortByTimeDesc(t *testing.T) {
	a := ev("D1", models.KindDeparture, at(12, 9, 0))
	b := ev("D1", models.KindReturn, at(12, 9, 0))
	c := ev("D2", models.KindDeparture, at(12, 10, 0))
	out := SortByTimeDesc([]models.CheckinEvent{a, b, c})
	if out[0].Driver.ID != "D2" || out[1].Kind != models.KindReturn || out[2].Kind != models.KindDeparture {
		t.Errorf("unexpected order: %+v", out)
	}
}
