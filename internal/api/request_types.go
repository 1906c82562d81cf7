package api

import (
	"DriverDesk/internal/attendance"
	"DriverDesk/internal/models"
	"DriverDesk/internal/roster"
)

// Структуры запросов и ответов API киоска.

// ScanRequest - тело POST /api/scan.
type ScanRequest struct {
	DriverID   string           `json:"driver_id"`
	Kind       models.EventKind `json:"kind"`
	HasUniform *bool            `json:"has_uniform,omitempty"`
	Comment    string           `json:"comment,omitempty"`
}

// DriverStatusResponse - текущее состояние водителя.
type DriverStatusResponse struct {
	Driver    models.Driver        `json:"driver"`
	Status    attendance.Status    `json:"status"`
	LastEvent *models.CheckinEvent `json:"last_event,omitempty"`
}

// ListResponse оборачивает список и его длину.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// StartDraftRequest открывает черновик отчёта на терминале.
type StartDraftRequest struct {
	TerminalID string          `json:"terminal_id"`
	Event      models.EventKey `json:"event"`
}

// ImportResponse - итог импорта реестра.
type ImportResponse struct {
	Imported int                `json:"imported"`
	Skipped  int                `json:"skipped"`
	Rows     []roster.RowResult `json:"rows"`
}

// PurgeResponse - число удаленных записей.
type PurgeResponse struct {
	Removed int `json:"removed"`
}

// ComplianceRatios - доли "да" для двух полей письма перевозки.
type ComplianceRatios struct {
	TamponDuRelais         float64 `json:"tampon_du_relais"`
	HoraireDePassageLocker float64 `json:"horaire_de_passage_locker"`
}

// StatsResponse - панель администратора за день.
type StatsResponse struct {
	models.Dashboard
	ComplianceRatios ComplianceRatios `json:"compliance_ratios"`
}
