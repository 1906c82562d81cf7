package models

import (
	"strings"
	"time"
)

// ClosureReason - причина закрытия пункта выдачи (PUDO).
type ClosureReason string

const (
	ClosureHoliday           ClosureReason = "holiday"
	ClosurePermanentlyClosed ClosureReason = "permanently_closed"
	ClosureOpeningHours      ClosureReason = "opening_hours"
	ClosureWorks             ClosureReason = "works"
	ClosureOther             ClosureReason = "other"
)

// Valid reports whether r is a known closure reason.
func (r ClosureReason) Valid() bool {
	switch r {
	case ClosureHoliday, ClosurePermanentlyClosed, ClosureOpeningHours, ClosureWorks, ClosureOther:
		return true
	}
	return false
}

// LetterOfTransport is the compliance sub-record of a return report.
type LetterOfTransport struct {
	TamponDuRelais         bool `json:"tampon_du_relais"`
	HoraireDePassageLocker bool `json:"horaire_de_passage_locker"`
}

// LockerSaturation - переполненный локер.
type LockerSaturation struct {
	Name string `json:"name"`
}

// MissingDelivery - недоставленные посылки по точке.
type MissingDelivery struct {
	Name    string `json:"name"`
	Parcels int    `json:"parcels,omitempty"`
}

// ClosedPoint - закрытый пункт выдачи с причиной.
type ClosedPoint struct {
	Name   string        `json:"name"`
	Reason ClosureReason `json:"reason"`
}

// IncidentReport is the return-trip report attached to one Return event.
type IncidentReport struct {
	ID                string             `json:"id"`
	Event             EventKey           `json:"event"`
	DriverName        string             `json:"driver_name"`
	Subcontractor     string             `json:"subcontractor"`
	Tour              string             `json:"tour,omitempty"`
	Letter            LetterOfTransport  `json:"letter_of_transport"`
	Saturations       []LockerSaturation `json:"saturations,omitempty"`
	MissingDeliveries []MissingDelivery  `json:"missing_deliveries,omitempty"`
	ClosedPoints      []ClosedPoint      `json:"closed_points,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// IncidentCount returns the number of entries across the three categories.
func (r IncidentReport) IncidentCount() int {
	return len(r.Saturations) + len(r.MissingDeliveries) + len(r.ClosedPoints)
}

// LocationNames lists every named location of the report in category order
// (saturations, missing deliveries, closed points). Blank names are dropped.
func (r IncidentReport) LocationNames() []string {
	names := make([]string, 0, r.IncidentCount())
	add := func(n string) {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	for _, s := range r.Saturations {
		add(s.Name)
	}
	for _, m := range r.MissingDeliveries {
		add(m.Name)
	}
	for _, c := range r.ClosedPoints {
		add(c.Name)
	}
	return names
}

// ReportDraft is the editable body of a report before submission.
type ReportDraft struct {
	Event             EventKey           `json:"event"`
	Letter            LetterOfTransport  `json:"letter_of_transport"`
	Saturations       []LockerSaturation `json:"saturations,omitempty"`
	MissingDeliveries []MissingDelivery  `json:"missing_deliveries,omitempty"`
	ClosedPoints      []ClosedPoint      `json:"closed_points,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}
