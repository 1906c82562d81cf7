package formatters

import (
	"fmt"
	"strings"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
	"DriverDesk/internal/utils"
)

const (
	separator = "─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─"
)

// labels - подписи сообщений супервайзеру по локали.
var labels = map[string]map[string]string{
	constants.LocaleFR: {
		"report_title":  "📋 *RAPPORT DE RETOUR*",
		"driver":        "Chauffeur",
		"subcontractor": "Sous-traitant",
		"tour":          "Tournée",
		"return":        "Retour",
		"stamp":         "Tampon du relais",
		"locker_time":   "Horaire de passage locker",
		"saturations":   "Lockers saturés",
		"missing":       "Livraisons manquantes",
		"closed":        "Points fermés",
		"notes":         "Notes",
		"no_incident":   "Aucun incident signalé.",
		"digest_title":  "📊 *SYNTHÈSE DU JOUR*",
		"checkins":      "Pointages",
		"drivers":       "Chauffeurs distincts",
		"departures":    "Départs",
		"returns":       "Retours",
		"pending":       "En attente de retour",
		"reports":       "Rapports",
		"top_locations": "Points les plus signalés",
		"top_drivers":   "Chauffeurs les plus signalés",
		"by_sub":        "Incidents par sous-traitant",
		"pending_title": "🚚 *EN ATTENTE DE RETOUR*",
		"none_pending":  "Tous les chauffeurs sont rentrés.",
		"since":         "parti à",
		"help":          "Commandes : /stats, /pending, /export",
	},
	constants.LocaleEN: {
		"report_title":  "📋 *RETURN REPORT*",
		"driver":        "Driver",
		"subcontractor": "Subcontractor",
		"tour":          "Tour",
		"return":        "Return",
		"stamp":         "Relay stamp",
		"locker_time":   "Locker pass time",
		"saturations":   "Saturated lockers",
		"missing":       "Missing deliveries",
		"closed":        "Closed points",
		"notes":         "Notes",
		"no_incident":   "No incident reported.",
		"digest_title":  "📊 *DAILY DIGEST*",
		"checkins":      "Check-ins",
		"drivers":       "Distinct drivers",
		"departures":    "Departures",
		"returns":       "Returns",
		"pending":       "Pending returns",
		"reports":       "Reports",
		"top_locations": "Most reported locations",
		"top_drivers":   "Most reported drivers",
		"by_sub":        "Incidents by subcontractor",
		"pending_title": "🚚 *PENDING RETURNS*",
		"none_pending":  "Every driver is back.",
		"since":         "left at",
		"help":          "Commands: /stats, /pending, /export",
	},
}

func label(locale, key string) string {
	return labels[constants.NormalizeLocale(locale, constants.LocaleFR)][key]
}

// FormatReportMessage форматирует уведомление супервайзеру о новом отчёте (Markdown).
func FormatReportMessage(r models.IncidentReport, locale string) string {
	esc := utils.EscapeTelegramMarkdown
	var b strings.Builder

	b.WriteString(label(locale, "report_title") + "\n")
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf(" •  %s: %s (%s)\n", label(locale, "driver"), esc(r.DriverName), esc(r.Event.DriverID)))
	if r.Subcontractor != "" {
		b.WriteString(fmt.Sprintf(" •  %s: %s\n", label(locale, "subcontractor"), esc(r.Subcontractor)))
	}
	if r.Tour != "" {
		b.WriteString(fmt.Sprintf(" •  %s: %s\n", label(locale, "tour"), esc(r.Tour)))
	}
	b.WriteString(fmt.Sprintf(" •  %s: %s\n", label(locale, "return"), esc(utils.FormatDateTime(r.Event.Timestamp, locale))))
	b.WriteString(fmt.Sprintf(" •  %s: %s\n", label(locale, "stamp"), constants.YesNoLabel(locale, r.Letter.TamponDuRelais)))
	b.WriteString(fmt.Sprintf(" •  %s: %s\n", label(locale, "locker_time"), constants.YesNoLabel(locale, r.Letter.HoraireDePassageLocker)))
	b.WriteString(separator + "\n")

	if r.IncidentCount() == 0 {
		b.WriteString(label(locale, "no_incident") + "\n")
	}
	if len(r.Saturations) > 0 {
		b.WriteString(fmt.Sprintf("🔒 *%s:*\n", label(locale, "saturations")))
		for _, s := range r.Saturations {
			b.WriteString(fmt.Sprintf(" •  %s\n", esc(s.Name)))
		}
	}
	if len(r.MissingDeliveries) > 0 {
		b.WriteString(fmt.Sprintf("📦 *%s:*\n", label(locale, "missing")))
		for _, m := range r.MissingDeliveries {
			if m.Parcels > 0 {
				b.WriteString(fmt.Sprintf(" •  %s (%d)\n", esc(m.Name), m.Parcels))
			} else {
				b.WriteString(fmt.Sprintf(" •  %s\n", esc(m.Name)))
			}
		}
	}
	if len(r.ClosedPoints) > 0 {
		b.WriteString(fmt.Sprintf("🚫 *%s:*\n", label(locale, "closed")))
		for _, c := range r.ClosedPoints {
			b.WriteString(fmt.Sprintf(" •  %s: %s\n", esc(c.Name), esc(constants.ClosureReasonLabel(locale, c.Reason))))
		}
	}
	if r.Notes != "" {
		b.WriteString(fmt.Sprintf("📝 *%s:* %s\n", label(locale, "notes"), esc(r.Notes)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDailyDigest форматирует сводку дня для супервайзера (Markdown).
func FormatDailyDigest(d models.Dashboard, locale string) string {
	esc := utils.EscapeTelegramMarkdown
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", label(locale, "digest_title"), esc(d.Date)))
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "checkins"), d.Daily.TotalCheckins))
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "drivers"), d.Daily.UniqueDrivers))
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "departures"), d.Daily.Departures))
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "returns"), d.Daily.Returns))
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "pending"), d.Daily.PendingReturns))
	b.WriteString(fmt.Sprintf(" •  %s: %d\n", label(locale, "reports"), d.ReportCount))

	var bySub []models.LabelCount
	for _, s := range d.IncidentsBySubcontractor {
		if n := s.Total(); n > 0 {
			bySub = append(bySub, models.LabelCount{Label: s.Subcontractor, Count: n})
		}
	}
	writeRanking(&b, label(locale, "by_sub"), bySub)
	writeRanking(&b, label(locale, "top_locations"), d.TopLocations)
	writeRanking(&b, label(locale, "top_drivers"), d.TopDrivers)
	return strings.TrimRight(b.String(), "\n")
}

func writeRanking(b *strings.Builder, title string, items []models.LabelCount) {
	if len(items) == 0 {
		return
	}
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf("*%s:*\n", title))
	for i, it := range items {
		b.WriteString(fmt.Sprintf(" %d. %s: %d\n", i+1, utils.EscapeTelegramMarkdown(it.Label), it.Count))
	}
}

// FormatPendingReturns перечисляет водителей, ещё не вернувшихся сегодня.
func FormatPendingReturns(pending []models.CheckinEvent, locale string) string {
	if len(pending) == 0 {
		return label(locale, "none_pending")
	}
	esc := utils.EscapeTelegramMarkdown
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d)\n", label(locale, "pending_title"), len(pending)))
	b.WriteString(separator + "\n")
	for _, e := range pending {
		b.WriteString(fmt.Sprintf(" •  %s (%s), %s %s\n",
			esc(e.Driver.Name), esc(e.Driver.ID), label(locale, "since"), e.Timestamp.Format("15:04")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatHelp returns the list of supervisor bot commands.
func FormatHelp(locale string) string {
	return label(locale, "help")
}
