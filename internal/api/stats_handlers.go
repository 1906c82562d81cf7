package api

import (
	"net/http"
	"strings"
	"time"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/stats"
)

// GetStats возвращает панель за день (?date=, ?locale=).
func GetStats(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	day, ok := parseDayParam(w, r, deps, "date")
	if !ok {
		return
	}
	d := deps.Service.Dashboard(day, requestLocale(r, deps))
	writeJSONSuccess(w, "Statistics retrieved successfully", StatsResponse{
		Dashboard: d,
		ComplianceRatios: ComplianceRatios{
			TamponDuRelais:         stats.Ratio(d.Compliance.TamponDuRelais),
			HoraireDePassageLocker: stats.Ratio(d.Compliance.HoraireDePassageLocker),
		},
	})
}

// GetAttendance - завершенные пары выезд/возврат за период.
func GetAttendance(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	f, ok := attendanceFilter(w, r, deps)
	if !ok {
		return
	}
	rows := deps.Service.Attendance(f)
	writeJSONSuccess(w, "Attendance retrieved", ListResponse{Items: rows, Total: len(rows)})
}

// attendanceFilter читает ?from=&to=&driver_id=&locale=. Missing bounds default to today.
func attendanceFilter(w http.ResponseWriter, r *http.Request, deps ApiDependencies) (stats.AttendanceFilter, bool) {
	from, ok := parseDayParam(w, r, deps, "from")
	if !ok {
		return stats.AttendanceFilter{}, false
	}
	to := from
	if r.URL.Query().Get("to") != "" {
		if to, ok = parseDayParam(w, r, deps, "to"); !ok {
			return stats.AttendanceFilter{}, false
		}
	}
	if to.Before(from) {
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "'to' is before 'from'")
		return stats.AttendanceFilter{}, false
	}
	if to.Sub(from) > 366*24*time.Hour {
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "range is limited to one year")
		return stats.AttendanceFilter{}, false
	}
	return stats.AttendanceFilter{
		From:     from,
		To:       to,
		DriverID: strings.TrimSpace(r.URL.Query().Get("driver_id")),
		Locale:   requestLocale(r, deps),
	}, true
}

// PurgeCheckins удаляет отметки до начала текущего дня.
func PurgeCheckins(w http.ResponseWriter, r *http.Request) {
	n := depsFrom(r).Service.PurgeOldCheckins(r.Context())
	writeJSONSuccess(w, "Old check-ins purged", PurgeResponse{Removed: n})
}
