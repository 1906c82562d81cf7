package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
	"DriverDesk/internal/session"
)

// GetEligibleReturns - возвраты за сегодня без отчёта.
func GetEligibleReturns(w http.ResponseWriter, r *http.Request) {
	events := depsFrom(r).Service.EligibleReturns()
	writeJSONSuccess(w, "Eligible returns retrieved", ListResponse{Items: events, Total: len(events)})
}

// StartDraft открывает черновик отчёта для возврата.
func StartDraft(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	var req StartDraftRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.TerminalID = strings.TrimSpace(req.TerminalID)
	if req.TerminalID == "" {
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "terminal_id is required")
		return
	}
	ev, err := deps.Service.CheckEligible(req.Event)
	if err != nil {
		writeServiceError(w, "StartDraft", err)
		return
	}
	draft := deps.Drafts.StartDraft(req.TerminalID, ev.Key())
	writeJSONSuccess(w, "Draft started", draft)
}

// GetDraft возвращает черновик терминала.
func GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := depsFrom(r).Drafts.GetDraft(chi.URLParam(r, "terminal"))
	if err != nil {
		writeServiceError(w, "GetDraft", err)
		return
	}
	writeJSONSuccess(w, "Draft retrieved", draft)
}

// UpdateDraft заменяет тело черновика.
func UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var body models.ReportDraft
	if !decodeJSON(w, r, &body) {
		return
	}
	draft, err := depsFrom(r).Drafts.UpdateDraft(chi.URLParam(r, "terminal"), body)
	if err != nil {
		writeServiceError(w, "UpdateDraft", err)
		return
	}
	writeJSONSuccess(w, "Draft updated", draft)
}

// CancelDraft отменяет черновик; the check-in log is not touched.
func CancelDraft(w http.ResponseWriter, r *http.Request) {
	terminal := chi.URLParam(r, "terminal")
	if !depsFrom(r).Drafts.ClearDraft(terminal) {
		writeServiceError(w, "CancelDraft", session.ErrDraftNotFound)
		return
	}
	writeJSONSuccess(w, "Draft cancelled", nil)
}

// SubmitDraft превращает черновик в отчёт.
func SubmitDraft(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	terminal := chi.URLParam(r, "terminal")
	draft, err := deps.Drafts.GetDraft(terminal)
	if err != nil {
		writeServiceError(w, "SubmitDraft", err)
		return
	}
	report, err := deps.Service.SubmitReport(r.Context(), draft.Draft)
	if err != nil {
		writeServiceError(w, "SubmitDraft", err)
		return
	}
	deps.Drafts.ClearDraft(terminal)
	writeJSONSuccess(w, "Report submitted", report)
}

// ListReports - отчёты за день (?date=).
func ListReports(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	day, ok := parseDayParam(w, r, deps, "date")
	if !ok {
		return
	}
	reports := deps.Service.Reports(day)
	writeJSONSuccess(w, "Reports retrieved", ListResponse{Items: reports, Total: len(reports)})
}

// PurgeReports удаляет все отчёты.
func PurgeReports(w http.ResponseWriter, r *http.Request) {
	n := depsFrom(r).Service.PurgeReports(r.Context())
	writeJSONSuccess(w, "Reports purged", PurgeResponse{Removed: n})
}
