package formatters

import (
	"strings"
	"testing"
	"time"

	"DriverDesk/internal/models"
)

func TestFormatReportMessage(t *testing.T) {
	r := models.IncidentReport{
		Event:             models.EventKey{DriverID: "D_1", Timestamp: time.Date(2024, 3, 12, 17, 5, 0, 0, time.UTC)},
		DriverName:        "Alice",
		Letter:            models.LetterOfTransport{TamponDuRelais: true},
		MissingDeliveries: []models.MissingDelivery{{Name: "Relais A", Parcels: 3}},
		ClosedPoints:      []models.ClosedPoint{{Name: "Tabac", Reason: models.ClosureHoliday}},
	}
	fr := FormatReportMessage(r, "fr")
	for _, want := range []string{"RAPPORT DE RETOUR", `D\_1`, "Relais A (3)", "Tabac: Congés", "Tampon du relais: Oui", "12/03/2024 17:05"} {
		if !strings.Contains(fr, want) {
			t.Errorf("fr message lacks %q:\n%s", want, fr)
		}
	}

	en := FormatReportMessage(models.IncidentReport{DriverName: "Bob"}, "en")
	if !strings.Contains(en, "No incident reported.") {
		t.Errorf("en message:\n%s", en)
	}
}

func TestFormatDailyDigest(t *testing.T) {
	d := models.Dashboard{
		Date:         "2024-03-12",
		Daily:        models.DailyStats{TotalCheckins: 4, UniqueDrivers: 2},
		TopLocations: []models.LabelCount{{Label: "Locker Gare", Count: 2}},
		IncidentsBySubcontractor: []models.SubcontractorIncidents{
			{Subcontractor: "Acme", Saturation: 1, MissingDelivery: 2, ClosedPoint: 1},
			{Subcontractor: "Zeta"},
		},
	}
	got := FormatDailyDigest(d, "en")
	for _, want := range []string{"DAILY DIGEST", "Check-ins: 4", "Distinct drivers: 2", "1. Locker Gare: 2", "1. Acme: 4"} {
		if !strings.Contains(got, want) {
			t.Errorf("digest lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Zeta") {
		t.Error("subcontractor without incidents should be omitted")
	}
	if strings.Contains(got, "Most reported drivers") {
		t.Error("empty ranking should be omitted")
	}
}
