package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"DriverDesk/internal/config"
	"DriverDesk/internal/kiosk"
	"DriverDesk/internal/models"
	"DriverDesk/internal/session"
)

// DigestSender отправляет сводку дня супервайзеру. Nil when notifications are off.
type DigestSender interface {
	SendDigest(d models.Dashboard, fileName string, workbook []byte) error
}

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config  *config.Config
	Service *kiosk.Service
	Drafts  *session.SessionManager
	Digest  DigestSender
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r chi.Router, deps ApiDependencies) {
	r.Use(DepsMiddleware(deps))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSONSuccess(w, "ok", nil)
	})

	// --- Киоск (публичные маршруты) ---
	r.Route("/api", func(r chi.Router) {
		r.Post("/scan", ScanHandler)
		r.Get("/pending-returns", GetPendingReturns)
		r.Get("/checkins", GetCheckins)
		r.Get("/drivers/{id}/status", GetDriverStatus)
		r.Get("/drivers/{id}/badge.png", GetDriverBadge)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/eligible", GetEligibleReturns)
			r.Post("/drafts", StartDraft)
			r.Get("/drafts/{terminal}", GetDraft)
			r.Put("/drafts/{terminal}", UpdateDraft)
			r.Delete("/drafts/{terminal}", CancelDraft)
			r.Post("/drafts/{terminal}/submit", SubmitDraft)
		})

		// --- Маршруты администратора ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminMiddleware(deps.Config.AdminPassword))

			r.Get("/drivers", ListDrivers)
			r.Post("/drivers", CreateDriver)
			r.Post("/drivers/import", ImportDrivers)
			r.Put("/drivers/{id}", UpdateDriver)
			r.Delete("/drivers/{id}", DeleteDriver)

			r.Get("/stats", GetStats)
			r.Get("/attendance", GetAttendance)

			r.Get("/reports", ListReports)
			r.Delete("/reports", PurgeReports)
			r.Post("/checkins/purge", PurgeCheckins)

			r.Get("/export/{file}", ExportDataset)
			r.Post("/digest", SendDigest)
		})
	})
}
