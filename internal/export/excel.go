package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	headerFill  = "1F4E78"
	headerFont  = "FFFFFF"
	minColWidth = 8
	maxColWidth = 60
)

// WriteXLSX writes one sheet per table into a single workbook.
func WriteXLSX(w io.Writer, tables ...Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("WriteXLSX: no tables")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("WriteXLSX: ошибка закрытия книги: %v", err)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("WriteXLSX: стиль заголовка: %w", err)
	}

	for i, t := range tables {
		index, err := f.NewSheet(t.Sheet)
		if err != nil {
			return fmt.Errorf("WriteXLSX: лист %q: %w", t.Sheet, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := fillSheet(f, t, headerStyle); err != nil {
			return err
		}
	}
	// NewFile создает Sheet1 / NewFile creates a default sheet
	if tables[0].Sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("WriteXLSX: удаление Sheet1: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("WriteXLSX: запись: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, t Table, headerStyle int) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(t.Sheet, cell, h); err != nil {
			return fmt.Errorf("fillSheet: %s: %w", cell, err)
		}
		widths[i] = utf8.RuneCountInString(h)
	}

	for r, row := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		values := row
		if err := f.SetSheetRow(t.Sheet, cell, &values); err != nil {
			return fmt.Errorf("fillSheet: строка %d: %w", r+2, err)
		}
		for i, v := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cellText(v)))
			}
		}
	}

	if len(t.Headers) == 0 {
		return nil
	}
	last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
	if err := f.SetCellStyle(t.Sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("fillSheet: стиль: %w", err)
	}

	for i, wdt := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(min(max(wdt+2, minColWidth), maxColWidth))
		if err := f.SetColWidth(t.Sheet, col, col, width); err != nil {
			return fmt.Errorf("fillSheet: ширина %s: %w", col, err)
		}
	}

	return f.SetPanes(t.Sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
