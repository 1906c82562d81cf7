package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/constants"
	"DriverDesk/internal/kiosk"
	"DriverDesk/internal/roster"
	"DriverDesk/internal/session"
	"DriverDesk/internal/utils"
)

// maxBodySize ограничивает тело JSON-запросов и файлов импорта.
const maxBodySize = 5 << 20

type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message, Code: code})
}

func writeJSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

// writeServiceError переводит ошибки домена в HTTP-ответ.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var formatErr *roster.FormatError
	switch {
	case errors.Is(err, attendance.ErrDriverNotFound):
		writeJSONError(w, http.StatusNotFound, constants.CodeDriverNotFound, err.Error())
	case errors.Is(err, attendance.ErrDuplicateDeparture):
		writeJSONError(w, http.StatusConflict, constants.CodeDuplicateDeparture, err.Error())
	case errors.Is(err, attendance.ErrReturnWithoutDeparture):
		writeJSONError(w, http.StatusConflict, constants.CodeReturnWithoutDeparture, err.Error())
	case errors.Is(err, attendance.ErrInvalidKind), errors.Is(err, roster.ErrInvalidDriver):
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error())
	case errors.Is(err, kiosk.ErrDriverExists):
		writeJSONError(w, http.StatusConflict, constants.CodeDriverExists, err.Error())
	case errors.As(err, &formatErr), errors.Is(err, roster.ErrEmptyFile):
		writeJSONError(w, http.StatusUnprocessableEntity, constants.CodeCSVFormat, err.Error())
	case errors.Is(err, kiosk.ErrEventNotFound):
		writeJSONError(w, http.StatusNotFound, constants.CodeEventNotFound, err.Error())
	case errors.Is(err, kiosk.ErrNotReturnEvent):
		writeJSONError(w, http.StatusConflict, constants.CodeNotReturnEvent, err.Error())
	case errors.Is(err, kiosk.ErrEventNotToday):
		writeJSONError(w, http.StatusConflict, constants.CodeEventNotToday, err.Error())
	case errors.Is(err, kiosk.ErrReportExists):
		writeJSONError(w, http.StatusConflict, constants.CodeReportExists, err.Error())
	case errors.Is(err, kiosk.ErrInvalidReport):
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidReport, err.Error())
	case errors.Is(err, session.ErrDraftNotFound):
		writeJSONError(w, http.StatusNotFound, constants.CodeDraftNotFound, err.Error())
	default:
		log.Errorf("%s: внутренняя ошибка: %v", op, err)
		writeJSONError(w, http.StatusInternalServerError, constants.CodeInternal, "Internal server error")
	}
}

// decodeJSON читает тело запроса в dst; unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// requestLocale берет локаль из ?locale=, иначе из конфигурации.
func requestLocale(r *http.Request, deps ApiDependencies) string {
	fallback := constants.LocaleFR
	if deps.Config != nil {
		fallback = deps.Config.DefaultLocale
	}
	return constants.NormalizeLocale(r.URL.Query().Get("locale"), fallback)
}

// ScanHandler принимает скан водителя на киоске.
func ScanHandler(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	var req ScanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ev, err := deps.Service.Scan(r.Context(), attendance.ScanRequest{
		DriverID:   req.DriverID,
		Kind:       req.Kind,
		HasUniform: req.HasUniform,
		Comment:    req.Comment,
	})
	if err != nil {
		writeServiceError(w, "ScanHandler", err)
		return
	}
	writeJSONSuccess(w, "Scan accepted", ev)
}

// GetDriverStatus возвращает статус водителя за сегодня.
func GetDriverStatus(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	id := chi.URLParam(r, "id")
	driver, ok := deps.Service.Driver(id)
	if !ok {
		writeServiceError(w, "GetDriverStatus", attendance.ErrDriverNotFound)
		return
	}
	status, last, err := deps.Service.Status(id)
	if err != nil {
		writeServiceError(w, "GetDriverStatus", err)
		return
	}
	writeJSONSuccess(w, "Driver status retrieved", DriverStatusResponse{Driver: driver, Status: status, LastEvent: last})
}

// GetPendingReturns возвращает водителей, ожидающих возврата.
func GetPendingReturns(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	pending := deps.Service.PendingReturns()
	writeJSONSuccess(w, "Pending returns retrieved", ListResponse{Items: pending, Total: len(pending)})
}

// GetCheckins возвращает отметки за день (?date=YYYY-MM-DD), новые сверху.
func GetCheckins(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	day, ok := parseDayParam(w, r, deps, "date")
	if !ok {
		return
	}
	events := deps.Service.Checkins(day)
	writeJSONSuccess(w, "Check-ins retrieved", ListResponse{Items: events, Total: len(events)})
}

// GetDriverBadge отдаёт PNG с QR-кодом водителя (?size=256).
func GetDriverBadge(w http.ResponseWriter, r *http.Request) {
	deps := depsFrom(r)
	driver, ok := deps.Service.Driver(chi.URLParam(r, "id"))
	if !ok {
		writeServiceError(w, "GetDriverBadge", attendance.ErrDriverNotFound)
		return
	}

	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 1024 {
			writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "size must be between 64 and 1024")
			return
		}
		size = n
	}

	png, err := utils.GenerateBadgeQRCode(driver.ID, size)
	if err != nil {
		writeServiceError(w, "GetDriverBadge", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// parseDayParam читает дату из query; an empty value means today.
func parseDayParam(w http.ResponseWriter, r *http.Request, deps ApiDependencies, name string) (day time.Time, ok bool) {
	day, err := utils.ParseDay(r.URL.Query().Get(name), deps.Service.Now(), deps.Service.Location())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error())
		return day, false
	}
	return day, true
}
