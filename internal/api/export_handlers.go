package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/export"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportDataset отдаёт /export/{dataset}.{csv|xlsx}.
func ExportDataset(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	dataset, ext, found := strings.Cut(chi.URLParam(r, "file"), ".")
	if !found || (ext != "csv" && ext != "xlsx") {
		writeJSONError(w, http.StatusNotFound, constants.CodeInvalidRequest, "Expected {dataset}.csv or {dataset}.xlsx")
		return
	}

	day, ok := parseDayParam(w, r, deps, "date")
	if !ok {
		return
	}
	locale := requestLocale(r, deps)

	var table export.Table
	switch dataset {
	case constants.DatasetCheckins:
		table = export.CheckinsTable(deps.Service.Checkins(day), locale)
	case constants.DatasetDrivers:
		table = export.DriversTable(deps.Service.Drivers(), locale)
	case constants.DatasetReports:
		table = export.ReportsTable(deps.Service.Reports(day), locale)
	case constants.DatasetAttendance:
		f, ok := attendanceFilter(w, r, deps)
		if !ok {
			return
		}
		day = f.From
		table = export.AttendanceTable(deps.Service.Attendance(f), locale)
	default:
		writeJSONError(w, http.StatusNotFound, constants.CodeInvalidRequest, fmt.Sprintf("Unknown dataset %q", dataset))
		return
	}

	var buf bytes.Buffer
	var err error
	contentType := mimeCSV
	if ext == "csv" {
		err = export.WriteCSV(&buf, table)
	} else {
		contentType = mimeXLSX
		err = export.WriteXLSX(&buf, table)
	}
	if err != nil {
		writeServiceError(w, "ExportDataset", err)
		return
	}

	name := export.FileName(dataset, day, ext)
	log.Infof("ExportDataset: %s (%d строк)", name, len(table.Rows))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// SendDigest отправляет сводку дня и книгу с отметками и отчётами в чат супервайзера.
func SendDigest(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	if deps.Digest == nil {
		writeJSONError(w, http.StatusServiceUnavailable, constants.CodeNotificationsDisabled, "Supervisor notifications are not configured")
		return
	}
	day, ok := parseDayParam(w, r, deps, "date")
	if !ok {
		return
	}
	locale := requestLocale(r, deps)

	var buf bytes.Buffer
	err := export.WriteXLSX(&buf,
		export.CheckinsTable(deps.Service.Checkins(day), locale),
		export.ReportsTable(deps.Service.Reports(day), locale),
	)
	if err != nil {
		writeServiceError(w, "SendDigest", err)
		return
	}

	d := deps.Service.Dashboard(day, locale)
	if err := deps.Digest.SendDigest(d, export.FileName(constants.DatasetCheckins, day, "xlsx"), buf.Bytes()); err != nil {
		log.Errorf("SendDigest: %v", err)
		writeJSONError(w, http.StatusBadGateway, constants.CodeInternal, "Failed to send digest")
		return
	}
	writeJSONSuccess(w, "Digest sent", d)
}
