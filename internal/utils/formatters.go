// Файл: internal/utils/formatters.go

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"DriverDesk/internal/constants"
)

// FormatDuration форматирует длительность по локали:
// fr → "3h05", en → "3h 05m". Negative durations are clamped to zero.
func FormatDuration(d time.Duration, locale string) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if locale == constants.LocaleEN {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// FormatDateTime форматирует момент времени для отчётов.
func FormatDateTime(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	if locale == constants.LocaleEN {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("02/01/2006 15:04")
}

// FormatDate форматирует дату для отчётов.
func FormatDate(t time.Time, locale string) string {
	if locale == constants.LocaleEN {
		return t.Format("2006-01-02")
	}
	return t.Format("02/01/2006")
}

// FormatBool returns the localized yes/no label, or "" for nil.
func FormatBool(v *bool, locale string) string {
	if v == nil {
		return ""
	}
	return constants.YesNoLabel(locale, *v)
}

// EscapeTelegramMarkdown экранирует специальные символы для Telegram Markdown (старый стиль).
func EscapeTelegramMarkdown(text string) string {
	var replacer = strings.NewReplacer(
		"_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[",
	)
	return replacer.Replace(text)
}

// GenerateUUID генерирует новый идентификатор.
func GenerateUUID() string {
	return uuid.New().String()
}
