// Package stats computes the read-side aggregates shown on the admin dashboard.
// Every function is pure: it takes snapshots and returns new values.
package stats

import (
	"sort"
	"strings"
	"time"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

// Daily считает события за день.
func Daily(events []models.CheckinEvent, now time.Time) models.DailyStats {
	today := attendance.EventsOn(events, now)
	drivers := make(map[string]struct{})
	var s models.DailyStats
	for _, e := range today {
		s.TotalCheckins++
		drivers[e.Driver.ID] = struct{}{}
		switch e.Kind {
		case models.KindDeparture:
			s.Departures++
		case models.KindReturn:
			s.Returns++
		}
	}
	s.UniqueDrivers = len(drivers)
	s.PendingReturns = len(attendance.PendingReturns(today, now))
	return s
}

// Hourly is a 24-bucket histogram of same-day events by local hour.
func Hourly(events []models.CheckinEvent, now time.Time) [24]int {
	var buckets [24]int
	for _, e := range attendance.EventsOn(events, now) {
		buckets[e.Timestamp.In(now.Location()).Hour()]++
	}
	return buckets
}

// ReportsOn keeps the reports created on now's local day.
func ReportsOn(reports []models.IncidentReport, now time.Time) []models.IncidentReport {
	var out []models.IncidentReport
	for _, r := range reports {
		if attendance.SameDay(r.CreatedAt, now) {
			out = append(out, r)
		}
	}
	return out
}

// IncidentsBySubcontractor sums the three incident categories per
// subcontractor, in order of first appearance.
func IncidentsBySubcontractor(reports []models.IncidentReport) []models.SubcontractorIncidents {
	index := make(map[string]int)
	var out []models.SubcontractorIncidents
	for _, r := range reports {
		i, ok := index[r.Subcontractor]
		if !ok {
			out = append(out, models.SubcontractorIncidents{Subcontractor: r.Subcontractor})
			i = len(out) - 1
			index[r.Subcontractor] = i
		}
		out[i].Saturation += len(r.Saturations)
		out[i].MissingDelivery += len(r.MissingDeliveries)
		out[i].ClosedPoint += len(r.ClosedPoints)
	}
	return out
}

// Compliance counts letters of transport with and without each flag.
func Compliance(reports []models.IncidentReport, locale string) models.Compliance {
	var tamponYes, horaireYes int
	for _, r := range reports {
		if r.Letter.TamponDuRelais {
			tamponYes++
		}
		if r.Letter.HoraireDePassageLocker {
			horaireYes++
		}
	}
	yes := constants.YesNoLabel(locale, true)
	no := constants.YesNoLabel(locale, false)
	return models.Compliance{
		TamponDuRelais:         [2]models.LabelCount{{Label: yes, Count: tamponYes}, {Label: no, Count: len(reports) - tamponYes}},
		HoraireDePassageLocker: [2]models.LabelCount{{Label: yes, Count: horaireYes}, {Label: no, Count: len(reports) - horaireYes}},
	}
}

// Ratio returns the share of the first bucket, 0 when the pair is empty.
func Ratio(pair [2]models.LabelCount) float64 {
	total := pair[0].Count + pair[1].Count
	if total == 0 {
		return 0
	}
	return float64(pair[0].Count) / float64(total)
}

// TopLocations ranks PUDO/locker names by how often they appear across the
// three incident categories. Ties keep first-seen order.
func TopLocations(reports []models.IncidentReport, limit int) []models.LabelCount {
	t := newTally()
	for _, r := range reports {
		for _, name := range r.LocationNames() {
			t.add(name, 1)
		}
	}
	return t.top(limit)
}

// TopDrivers ranks drivers by total incident count; drivers with no
// incidents are left out.
func TopDrivers(reports []models.IncidentReport, limit int) []models.LabelCount {
	t := newTally()
	for _, r := range reports {
		if n := r.IncidentCount(); n > 0 {
			t.add(strings.TrimSpace(r.DriverName), n)
		}
	}
	return t.top(limit)
}

// ClosureReasons counts closed-point incidents per reason, first-seen order.
func ClosureReasons(reports []models.IncidentReport, locale string) []models.LabelCount {
	t := newTally()
	for _, r := range reports {
		for _, c := range r.ClosedPoints {
			t.add(constants.ClosureReasonLabel(locale, c.Reason), 1)
		}
	}
	return t.items
}

// Build computes the whole dashboard for now's day.
func Build(events []models.CheckinEvent, reports []models.IncidentReport, now time.Time, locale string) models.Dashboard {
	today := ReportsOn(reports, now)
	return models.Dashboard{
		Date:                     now.Format("2006-01-02"),
		Daily:                    Daily(events, now),
		Hourly:                   Hourly(events, now),
		IncidentsBySubcontractor: IncidentsBySubcontractor(today),
		Compliance:               Compliance(today, locale),
		TopLocations:             TopLocations(today, constants.TopN),
		TopDrivers:               TopDrivers(today, constants.TopN),
		ClosureReasons:           ClosureReasons(today, locale),
		ReportCount:              len(today),
	}
}

// tally counts labels keeping first-seen order.
type tally struct {
	index map[string]int
	items []models.LabelCount
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(label string, n int) {
	if i, ok := t.index[label]; ok {
		t.items[i].Count += n
		return
	}
	t.index[label] = len(t.items)
	t.items = append(t.items, models.LabelCount{Label: label, Count: n})
}

func (t *tally) top(limit int) []models.LabelCount {
	out := make([]models.LabelCount, len(t.items))
	copy(out, t.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
