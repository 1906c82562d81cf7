// Package attendance derives each driver's current state from the check-in log.
package attendance

import (
	"sort"
	"time"

	"DriverDesk/internal/models"
)

// Status - текущее состояние водителя за сегодня.
type Status string

const (
	StatusNeutral  Status = "neutral"
	StatusDeparted Status = "departed"
	StatusReturned Status = "returned"
)

// SameDay reports whether t falls on the same local calendar day as now,
// using now's location. This is not a rolling 24h window.
func SameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// StartOfDay returns local midnight of now's day.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// EventsOn returns the events of now's day, in log order.
func EventsOn(events []models.CheckinEvent, now time.Time) []models.CheckinEvent {
	var out []models.CheckinEvent
	for _, e := range events {
		if SameDay(e.Timestamp, now) {
			out = append(out, e)
		}
	}
	return out
}

// LastEventToday returns the most recent same-day event of driverID.
// Among equal timestamps the one appended last wins.
func LastEventToday(events []models.CheckinEvent, driverID string, now time.Time) (models.CheckinEvent, bool) {
	var last models.CheckinEvent
	found := false
	for _, e := range events {
		if e.Driver.ID != driverID || !SameDay(e.Timestamp, now) {
			continue
		}
		if !found || !e.Timestamp.Before(last.Timestamp) {
			last = e
			found = true
		}
	}
	return last, found
}

// StatusOf derives the status of driverID from the kind of its latest same-day event.
func StatusOf(events []models.CheckinEvent, driverID string, now time.Time) Status {
	last, ok := LastEventToday(events, driverID, now)
	if !ok {
		return StatusNeutral
	}
	if last.Kind == models.KindDeparture {
		return StatusDeparted
	}
	return StatusReturned
}

// PendingReturns returns, for every driver whose latest same-day event is a
// Departure, that Departure event. Oldest departure first; equal times keep
// the order in which the drivers first appear in the log.
func PendingReturns(events []models.CheckinEvent, now time.Time) []models.CheckinEvent {
	latest := make(map[string]models.CheckinEvent)
	var order []string
	for _, e := range events {
		if !SameDay(e.Timestamp, now) {
			continue
		}
		cur, seen := latest[e.Driver.ID]
		if !seen {
			order = append(order, e.Driver.ID)
		}
		if !seen || !e.Timestamp.Before(cur.Timestamp) {
			latest[e.Driver.ID] = e
		}
	}

	pending := make([]models.CheckinEvent, 0, len(order))
	for _, id := range order {
		if e := latest[id]; e.Kind == models.KindDeparture {
			pending = append(pending, e)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Timestamp.Before(pending[j].Timestamp)
	})
	return pending
}

// SortByTimeDesc returns a copy of events, newest first. Equal timestamps keep
// reverse insertion order so the last appended event comes first.
func SortByTimeDesc(events []models.CheckinEvent) []models.CheckinEvent {
	out := make([]models.CheckinEvent, len(events))
	for i, e := range events {
		out[len(events)-1-i] = e
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
