package stats

import (
	"strings"
	"time"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/models"
	"DriverDesk/internal/utils"
)

// AttendanceFilter selects the rows of the attendance summary.
// From and To are inclusive local days; DriverID is optional.
type AttendanceFilter struct {
	From     time.Time
	To       time.Time
	DriverID string
	Locale   string
}

// Attendance joins completed departure/return pairs whose departure day lies in
// the filter range. Pairs without a return are left out.
func Attendance(events []models.CheckinEvent, f AttendanceFilter, loc *time.Location) []models.AttendanceRow {
	if loc == nil {
		loc = time.Local
	}
	from := attendance.StartOfDay(f.From.In(loc))
	to := attendance.StartOfDay(f.To.In(loc)).AddDate(0, 0, 1)
	driverID := strings.TrimSpace(f.DriverID)

	var rows []models.AttendanceRow
	for _, s := range attendance.Sessions(events, loc) {
		if !s.Completed() {
			continue
		}
		dep := s.Departure
		if driverID != "" && dep.Driver.ID != driverID {
			continue
		}
		ts := dep.Timestamp.In(loc)
		if ts.Before(from) || !ts.Before(to) {
			continue
		}
		d := s.Duration()
		rows = append(rows, models.AttendanceRow{
			DriverID:      dep.Driver.ID,
			DriverName:    dep.Driver.Name,
			Subcontractor: dep.Driver.Subcontractor,
			Plate:         dep.Driver.Plate,
			Date:          ts.Format("2006-01-02"),
			CheckIn:       ts,
			CheckOut:      s.Return.Timestamp.In(loc),
			Duration:      d,
			DurationLabel: utils.FormatDuration(d, f.Locale),
		})
	}
	return rows
}
