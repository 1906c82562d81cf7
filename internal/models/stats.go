package models

import "time"

// DailyStats - сводка по событиям за день.
type DailyStats struct {
	TotalCheckins  int `json:"total_checkins"`
	UniqueDrivers  int `json:"unique_drivers"`
	Departures     int `json:"departures"`
	Returns        int `json:"returns"`
	PendingReturns int `json:"pending_returns"`
}

// SubcontractorIncidents sums incident categories for one subcontractor.
type SubcontractorIncidents struct {
	Subcontractor   string `json:"subcontractor"`
	Saturation      int    `json:"saturation"`
	MissingDelivery int    `json:"missing_delivery"`
	ClosedPoint     int    `json:"closed_point"`
}

// Total returns the sum of the three categories.
func (s SubcontractorIncidents) Total() int {
	return s.Saturation + s.MissingDelivery + s.ClosedPoint
}

// LabelCount is one bucket of a chart.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Compliance holds the letter-of-transport ratios; each pair is (yes, no).
type Compliance struct {
	TamponDuRelais         [2]LabelCount `json:"tampon_du_relais"`
	HoraireDePassageLocker [2]LabelCount `json:"horaire_de_passage_locker"`
}

// AttendanceRow is one completed departure/return pair.
type AttendanceRow struct {
	DriverID      string        `json:"driver_id"`
	DriverName    string        `json:"driver_name"`
	Subcontractor string        `json:"subcontractor"`
	Plate         string        `json:"plate,omitempty"`
	Date          string        `json:"date"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	Duration      time.Duration `json:"duration"`
	DurationLabel string        `json:"duration_label"`
}

// Dashboard is the full set of aggregates for one day.
type Dashboard struct {
	Date                     string                   `json:"date"`
	Daily                    DailyStats               `json:"daily"`
	Hourly                   [24]int                  `json:"hourly"`
	IncidentsBySubcontractor []SubcontractorIncidents `json:"incidents_by_subcontractor"`
	Compliance               Compliance               `json:"compliance"`
	TopLocations             []LabelCount             `json:"top_locations"`
	TopDrivers               []LabelCount             `json:"top_drivers"`
	ClosureReasons           []LabelCount             `json:"closure_reasons"`
	ReportCount              int                      `json:"report_count"`
}
