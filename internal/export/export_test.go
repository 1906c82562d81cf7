package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"DriverDesk/internal/models"
	"DriverDesk/internal/roster"
)

func TestWriteCSVQuotesEverything(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{
		Headers: []string{"nom", "note"},
		Rows:    [][]any{{`Dupont "Jo"`, 3}, {"a,b", nil}},
	}
	if err := WriteCSV(&buf, tbl); err != nil {
		t.Fatal(err)
	}
	want := utf8BOM + "\"nom\",\"note\"\r\n\"Dupont \"\"Jo\"\"\",\"3\"\r\n\"a,b\",\"\"\r\n"
	if got := buf.String(); got != want {
		t.Errorf("csv =\n%q\nwant\n%q", got, want)
	}
}

func TestDriversExportImportsBack(t *testing.T) {
	drivers := roster.Seed()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, DriversTable(drivers, "en")); err != nil {
		t.Fatal(err)
	}
	res, err := roster.ParseCSV(&buf)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if len(res.Drivers) != len(drivers) {
		t.Fatalf("re-imported %d drivers, want %d", len(res.Drivers), len(drivers))
	}
	for i := range drivers {
		if res.Drivers[i] != drivers[i] {
			t.Errorf("row %d: %+v != %+v", i, res.Drivers[i], drivers[i])
		}
	}
}

func TestCheckinsTableLocalized(t *testing.T) {
	yes := true
	ts := time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC)
	events := []models.CheckinEvent{{
		Driver:     models.Driver{ID: "D1", Name: "Alice"},
		Timestamp:  ts,
		Kind:       models.KindDeparture,
		HasUniform: &yes,
	}}

	fr := CheckinsTable(events, "fr")
	if fr.Sheet != "Pointages" || fr.Rows[0][6] != "Départ" || fr.Rows[0][7] != "Oui" {
		t.Errorf("fr table = %+v", fr)
	}
	en := CheckinsTable(events, "en")
	if en.Headers[0] != "Date/time" || en.Rows[0][6] != "Departure" || en.Rows[0][0] != "2024-03-12 08:30" {
		t.Errorf("en table = %+v", en)
	}
}

func TestReportsTable(t *testing.T) {
	r := models.IncidentReport{
		DriverName:        "Alice",
		MissingDeliveries: []models.MissingDelivery{{Name: "Relais A", Parcels: 2}},
		ClosedPoints:      []models.ClosedPoint{{Name: "Tabac", Reason: models.ClosureWorks}},
	}
	tbl := ReportsTable([]models.IncidentReport{r}, "fr")
	row := tbl.Rows[0]
	if row[9] != "Relais A (2)" || row[10] != "Tabac (Travaux)" || row[11] != 2 {
		t.Errorf("row = %+v", row)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	checkins := CheckinsTable(nil, "fr")
	drivers := DriversTable(roster.Seed(), "fr")
	if err := WriteXLSX(&buf, checkins, drivers); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if strings.Join(sheets, ",") != "Pointages,Chauffeurs" {
		t.Fatalf("sheets = %v", sheets)
	}
	v, err := f.GetCellValue("Chauffeurs", "A2")
	if err != nil || v != roster.Seed()[0].Name {
		t.Errorf("A2 = %q, %v", v, err)
	}
	h, _ := f.GetCellValue("Chauffeurs", "D1")
	if h != "tournée" {
		t.Errorf("D1 = %q", h)
	}
}

func TestWriteXLSXNoTables(t *testing.T) {
	if err := WriteXLSX(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}
