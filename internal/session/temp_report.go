package session

import (
	"time"

	"DriverDesk/internal/models"
)

// TempReportData хранит черновик отчёта о возврате, открытый на терминале.
// TempReportData holds the return-report draft a terminal is editing.
type TempReportData struct {
	TerminalID string             `json:"terminal_id"`
	Draft      models.ReportDraft `json:"draft"`
	StartedAt  time.Time          `json:"started_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewTempReport создает новый черновик для события возврата.
func NewTempReport(terminalID string, event models.EventKey, now time.Time) TempReportData {
	return TempReportData{
		TerminalID: terminalID,
		Draft:      models.ReportDraft{Event: event},
		StartedAt:  now,
		UpdatedAt:  now,
	}
}
