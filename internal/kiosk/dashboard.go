package kiosk

import (
	"time"

	"DriverDesk/internal/models"
	"DriverDesk/internal/stats"
)

// Dashboard computes the aggregates of day from a fresh snapshot.
func (s *Service) Dashboard(day time.Time, locale string) models.Dashboard {
	events, reports := s.Snapshot()
	return stats.Build(events, reports, day.In(s.loc), locale)
}

// Attendance returns the completed departure/return pairs matching f.
func (s *Service) Attendance(f stats.AttendanceFilter) []models.AttendanceRow {
	events, _ := s.Snapshot()
	return stats.Attendance(events, f, s.loc)
}
