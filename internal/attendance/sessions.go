package attendance

import (
	"sort"
	"time"

	"DriverDesk/internal/models"
)

// Session is a departure optionally closed by a same-day return.
type Session struct {
	Departure models.CheckinEvent
	Return    *models.CheckinEvent
}

// Completed reports whether the session has a return.
func (s Session) Completed() bool { return s.Return != nil }

// Duration is return minus departure, zero for open sessions.
func (s Session) Duration() time.Duration {
	if s.Return == nil {
		return 0
	}
	return s.Return.Timestamp.Sub(s.Departure.Timestamp)
}

// Sessions pairs every Departure with the next Return of the same driver on
// the same local day (in loc). A Return with no open departure is ignored; a
// Departure without a Return stays open. Result is ordered by departure time.
func Sessions(events []models.CheckinEvent, loc *time.Location) []Session {
	type indexed struct {
		e   models.CheckinEvent
		pos int
	}
	ordered := make([]indexed, len(events))
	for i, e := range events {
		ordered[i] = indexed{e: e, pos: i}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].e.Timestamp.Before(ordered[j].e.Timestamp)
	})

	var sessions []Session
	open := make(map[string]int) // driver id -> index in sessions
	for _, it := range ordered {
		e := it.e
		switch e.Kind {
		case models.KindDeparture:
			sessions = append(sessions, Session{Departure: e})
			open[e.Driver.ID] = len(sessions) - 1
		case models.KindReturn:
			idx, ok := open[e.Driver.ID]
			if !ok {
				continue
			}
			delete(open, e.Driver.ID)
			if !SameDay(e.Timestamp, sessions[idx].Departure.Timestamp.In(loc)) {
				continue
			}
			ret := e
			sessions[idx].Return = &ret
		}
	}
	return sessions
}
