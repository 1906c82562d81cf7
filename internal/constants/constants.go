package constants

import "DriverDesk/internal/models"

// Ключи хранилища (бывшие ключи localStorage).
// Storage keys (the former local-storage keys).
const (
	KeyDrivers  = "driverdesk.drivers"
	KeyCheckins = "driverdesk.checkins"
	KeyReports  = "driverdesk.reports"
)

// SchemaVersion is written into every persisted envelope.
const SchemaVersion = 1

// TopN is the length of the top-locations and top-drivers rankings.
const TopN = 5

// Locales
const (
	LocaleFR = "fr"
	LocaleEN = "en"
)

// Storage drivers
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Export datasets
const (
	DatasetCheckins   = "checkins"
	DatasetDrivers    = "drivers"
	DatasetReports    = "reports"
	DatasetAttendance = "attendance"
)

// Error codes returned in the API envelope.
const (
	CodeDriverNotFound         = "driver_not_found"
	CodeDuplicateDeparture     = "duplicate_departure"
	CodeReturnWithoutDeparture = "return_without_departure"
	CodeCSVFormat              = "csv_format"
	CodeEventNotFound          = "event_not_found"
	CodeNotReturnEvent         = "not_return_event"
	CodeReportExists           = "report_exists"
	CodeEventNotToday          = "event_not_today"
	CodeDraftNotFound          = "draft_not_found"
	CodeInvalidRequest         = "invalid_request"
	CodeDriverExists           = "driver_exists"
	CodeInvalidReport          = "invalid_report"
	CodeUnauthorized           = "unauthorized"
	CodeNotificationsDisabled  = "notifications_disabled"
	CodeInternal               = "internal_error"
)

// KindDisplayMap - подписи типов событий по локали.
var KindDisplayMap = map[string]map[models.EventKind]string{
	LocaleFR: {
		models.KindDeparture: "Départ",
		models.KindReturn:    "Retour",
	},
	LocaleEN: {
		models.KindDeparture: "Departure",
		models.KindReturn:    "Return",
	},
}

// ClosureReasonDisplayMap - подписи причин закрытия по локали.
var ClosureReasonDisplayMap = map[string]map[models.ClosureReason]string{
	LocaleFR: {
		models.ClosureHoliday:           "Congés",
		models.ClosurePermanentlyClosed: "Fermeture définitive",
		models.ClosureOpeningHours:      "Hors horaires d'ouverture",
		models.ClosureWorks:             "Travaux",
		models.ClosureOther:             "Autre",
	},
	LocaleEN: {
		models.ClosureHoliday:           "Holiday",
		models.ClosurePermanentlyClosed: "Permanently closed",
		models.ClosureOpeningHours:      "Outside opening hours",
		models.ClosureWorks:             "Works",
		models.ClosureOther:             "Other",
	},
}

// YesNoDisplayMap holds the labels of the two compliance buckets.
var YesNoDisplayMap = map[string][2]string{
	LocaleFR: {"Oui", "Non"},
	LocaleEN: {"Yes", "No"},
}

// KindLabel returns the display label of kind for locale, falling back to the raw value.
func KindLabel(locale string, kind models.EventKind) string {
	if m, ok := KindDisplayMap[locale]; ok {
		if v, ok := m[kind]; ok {
			return v
		}
	}
	return string(kind)
}

// ClosureReasonLabel returns the display label of reason for locale.
func ClosureReasonLabel(locale string, reason models.ClosureReason) string {
	if m, ok := ClosureReasonDisplayMap[locale]; ok {
		if v, ok := m[reason]; ok {
			return v
		}
	}
	return string(reason)
}

// YesNoLabel returns the yes/no label for locale.
func YesNoLabel(locale string, v bool) string {
	labels, ok := YesNoDisplayMap[locale]
	if !ok {
		labels = YesNoDisplayMap[LocaleEN]
	}
	if v {
		return labels[0]
	}
	return labels[1]
}

// NormalizeLocale maps anything unknown to the fallback.
func NormalizeLocale(locale, fallback string) string {
	switch locale {
	case LocaleFR, LocaleEN:
		return locale
	}
	if fallback == LocaleFR || fallback == LocaleEN {
		return fallback
	}
	return LocaleFR
}
