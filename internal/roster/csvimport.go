// Package roster parses roster imports and validates driver records.
package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"DriverDesk/internal/models"
)

// Column - обязательная колонка файла импорта.
type Column int

const (
	ColName Column = iota
	ColSubcontractor
	ColPlate
	ColTour
	ColID
	ColPhone
)

// RequiredColumns is checked against the header before any row is read.
var RequiredColumns = []Column{ColName, ColSubcontractor, ColPlate, ColTour, ColID, ColPhone}

// columnNames holds the canonical (French) header of each column.
var columnNames = map[Column]string{
	ColName:          "nom",
	ColSubcontractor: "sous-traitant",
	ColPlate:         "plaque",
	ColTour:          "tournée",
	ColID:            "identifiant",
	ColPhone:         "téléphone",
}

// columnAliases maps folded header names to columns.
var columnAliases = map[string]Column{
	"nom":             ColName,
	"name":            ColName,
	"soustraitant":    ColSubcontractor,
	"subcontractor":   ColSubcontractor,
	"societe":         ColSubcontractor,
	"company":         ColSubcontractor,
	"plaque":          ColPlate,
	"immatriculation": ColPlate,
	"plate":           ColPlate,
	"tournee":         ColTour,
	"tour":            ColTour,
	"route":           ColTour,
	"identifiant":     ColID,
	"id":              ColID,
	"identifier":      ColID,
	"telephone":       ColPhone,
	"phone":           ColPhone,
}

func (c Column) String() string { return columnNames[c] }

// FormatError is returned when the header lacks required columns; nothing is imported.
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("csv format error: missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// ErrEmptyFile - файл без заголовка.
var ErrEmptyFile = errors.New("csv file is empty")

// SkipReason explains why a data row produced no driver.
type SkipReason string

const (
	SkipNone                 SkipReason = ""
	SkipMissingName          SkipReason = "missing_name"
	SkipMissingID            SkipReason = "missing_id"
	SkipMissingSubcontractor SkipReason = "missing_subcontractor"
	SkipDuplicateID          SkipReason = "duplicate_id"
	SkipInvalidField         SkipReason = "invalid_field"
)

// RowResult is the tagged outcome of one data row: either Driver is set or Skip is.
type RowResult struct {
	Line   int            `json:"line"`
	Driver *models.Driver `json:"driver,omitempty"`
	Skip   SkipReason     `json:"skip,omitempty"`
}

// ImportResult is the outcome of a successful header check.
type ImportResult struct {
	Drivers []models.Driver `json:"drivers"`
	Rows    []RowResult     `json:"rows"`
	Skipped int             `json:"skipped"`
}

// ParseCSV reads a roster file. The delimiter (',' or ';') is taken from the
// header line and a UTF-8 BOM is ignored.
func ParseCSV(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	seen := make(map[string]bool)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row := parseRow(record, index, line)
		if row.Driver != nil {
			if seen[row.Driver.ID] {
				row = RowResult{Line: line, Skip: SkipDuplicateID}
			} else {
				seen[row.Driver.ID] = true
			}
		}
		res.Rows = append(res.Rows, row)
		if row.Driver != nil {
			res.Drivers = append(res.Drivers, *row.Driver)
		} else {
			res.Skipped++
		}
	}
	return res, nil
}

// headerIndex maps every required column to its position or returns a FormatError.
func headerIndex(header []string) (map[Column]int, error) {
	index := make(map[Column]int)
	for i, h := range header {
		if col, ok := columnAliases[foldHeader(h)]; ok {
			if _, dup := index[col]; !dup {
				index[col] = i
			}
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col.String())
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Missing: missing}
	}
	return index, nil
}

func parseRow(record []string, index map[Column]int, line int) RowResult {
	get := func(c Column) string {
		i := index[c]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	d := models.Driver{
		ID:            get(ColID),
		Name:          get(ColName),
		Subcontractor: get(ColSubcontractor),
		Tour:          get(ColTour),
		Plate:         get(ColPlate),
		Phone:         get(ColPhone),
	}.Normalize()

	switch {
	case d.Name == "":
		return RowResult{Line: line, Skip: SkipMissingName}
	case d.ID == "":
		return RowResult{Line: line, Skip: SkipMissingID}
	case d.Subcontractor == "":
		return RowResult{Line: line, Skip: SkipMissingSubcontractor}
	}
	// same normalization as drivers added through the admin form
	d, err := ValidateDriver(d)
	if err != nil {
		return RowResult{Line: line, Skip: SkipInvalidField}
	}
	return RowResult{Line: line, Driver: &d}
}

func sniffDelimiter(firstLine []byte) rune {
	if i := bytes.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

// foldHeader lower-cases, strips accents and drops everything but letters and digits.
func foldHeader(h string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(h)))
	if err != nil {
		folded = strings.ToLower(h)
	}
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
