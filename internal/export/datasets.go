package export

import (
	"fmt"
	"strings"
	"time"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
	"DriverDesk/internal/roster"
	"DriverDesk/internal/utils"
)

// Заголовки и названия листов по локали.
var sheetNames = map[string]map[string]string{
	constants.LocaleFR: {
		constants.DatasetCheckins:   "Pointages",
		constants.DatasetDrivers:    "Chauffeurs",
		constants.DatasetReports:    "Rapports",
		constants.DatasetAttendance: "Présence",
	},
	constants.LocaleEN: {
		constants.DatasetCheckins:   "Check-ins",
		constants.DatasetDrivers:    "Drivers",
		constants.DatasetReports:    "Reports",
		constants.DatasetAttendance: "Attendance",
	},
}

var datasetHeaders = map[string]map[string][]string{
	constants.LocaleFR: {
		constants.DatasetCheckins:   {"Date/heure", "Identifiant", "Nom", "Sous-traitant", "Tournée", "Plaque", "Type", "Tenue", "Commentaire"},
		constants.DatasetReports:    {"Créé le", "Identifiant", "Nom", "Sous-traitant", "Tournée", "Retour", "Tampon du relais", "Horaire de passage locker", "Saturations", "Livraisons manquantes", "Points fermés", "Total incidents", "Notes"},
		constants.DatasetAttendance: {"Date", "Identifiant", "Nom", "Sous-traitant", "Plaque", "Départ", "Retour", "Durée"},
	},
	constants.LocaleEN: {
		constants.DatasetCheckins:   {"Date/time", "ID", "Name", "Subcontractor", "Tour", "Plate", "Kind", "Uniform", "Comment"},
		constants.DatasetReports:    {"Created at", "ID", "Name", "Subcontractor", "Tour", "Return", "Relay stamp", "Locker pass time", "Saturations", "Missing deliveries", "Closed points", "Total incidents", "Notes"},
		constants.DatasetAttendance: {"Date", "ID", "Name", "Subcontractor", "Plate", "Departure", "Return", "Duration"},
	},
}

func sheetName(locale, dataset string) string {
	return sheetNames[constants.NormalizeLocale(locale, constants.LocaleFR)][dataset]
}

func headersFor(locale, dataset string) []string {
	return datasetHeaders[constants.NormalizeLocale(locale, constants.LocaleFR)][dataset]
}

// FileName returns the download name of a dataset, e.g. checkins_2024-03-12.xlsx.
func FileName(dataset string, day time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", dataset, day.Format("2006-01-02"), ext)
}

// CheckinsTable lists events in the given order.
func CheckinsTable(events []models.CheckinEvent, locale string) Table {
	t := Table{Sheet: sheetName(locale, constants.DatasetCheckins), Headers: headersFor(locale, constants.DatasetCheckins)}
	for _, e := range events {
		t.Rows = append(t.Rows, []any{
			utils.FormatDateTime(e.Timestamp, locale),
			e.Driver.ID,
			e.Driver.Name,
			e.Driver.Subcontractor,
			e.Driver.Tour,
			e.Driver.Plate,
			constants.KindLabel(locale, e.Kind),
			utils.FormatBool(e.HasUniform, locale),
			e.Comment,
		})
	}
	return t
}

// DriversTable uses the import column names as headers so an export can be
// imported back unchanged.
func DriversTable(drivers []models.Driver, locale string) Table {
	t := Table{Sheet: sheetName(locale, constants.DatasetDrivers)}
	for _, c := range roster.RequiredColumns {
		t.Headers = append(t.Headers, c.String())
	}
	for _, d := range drivers {
		row := make([]any, 0, len(roster.RequiredColumns))
		for _, c := range roster.RequiredColumns {
			row = append(row, driverField(d, c))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func driverField(d models.Driver, c roster.Column) string {
	switch c {
	case roster.ColName:
		return d.Name
	case roster.ColSubcontractor:
		return d.Subcontractor
	case roster.ColPlate:
		return d.Plate
	case roster.ColTour:
		return d.Tour
	case roster.ColID:
		return d.ID
	case roster.ColPhone:
		return d.Phone
	}
	return ""
}

// ReportsTable flattens each report into one row; incident lists are joined with "; ".
func ReportsTable(reports []models.IncidentReport, locale string) Table {
	t := Table{Sheet: sheetName(locale, constants.DatasetReports), Headers: headersFor(locale, constants.DatasetReports)}
	for _, r := range reports {
		sat := make([]string, 0, len(r.Saturations))
		for _, s := range r.Saturations {
			sat = append(sat, s.Name)
		}
		missing := make([]string, 0, len(r.MissingDeliveries))
		for _, m := range r.MissingDeliveries {
			if m.Parcels > 0 {
				missing = append(missing, fmt.Sprintf("%s (%d)", m.Name, m.Parcels))
			} else {
				missing = append(missing, m.Name)
			}
		}
		closed := make([]string, 0, len(r.ClosedPoints))
		for _, c := range r.ClosedPoints {
			closed = append(closed, fmt.Sprintf("%s (%s)", c.Name, constants.ClosureReasonLabel(locale, c.Reason)))
		}

		t.Rows = append(t.Rows, []any{
			utils.FormatDateTime(r.CreatedAt, locale),
			r.Event.DriverID,
			r.DriverName,
			r.Subcontractor,
			r.Tour,
			utils.FormatDateTime(r.Event.Timestamp, locale),
			constants.YesNoLabel(locale, r.Letter.TamponDuRelais),
			constants.YesNoLabel(locale, r.Letter.HoraireDePassageLocker),
			strings.Join(sat, "; "),
			strings.Join(missing, "; "),
			strings.Join(closed, "; "),
			r.IncidentCount(),
			r.Notes,
		})
	}
	return t
}

// AttendanceTable renders completed sessions.
func AttendanceTable(rows []models.AttendanceRow, locale string) Table {
	t := Table{Sheet: sheetName(locale, constants.DatasetAttendance), Headers: headersFor(locale, constants.DatasetAttendance)}
	for _, a := range rows {
		t.Rows = append(t.Rows, []any{
			a.Date,
			a.DriverID,
			a.DriverName,
			a.Subcontractor,
			a.Plate,
			a.CheckIn.Format("15:04"),
			a.CheckOut.Format("15:04"),
			a.DurationLabel,
		})
	}
	return t
}
