package telegram_api

import (
	"fmt"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/formatters"
	"DriverDesk/internal/models"
)

// Notifier шлёт уведомления в чат супервайзера.
type Notifier struct {
	sender Sender
	chatID int64
	locale string
	// async is false in tests so that sends happen before ReportSubmitted returns.
	async bool
}

// NewNotifier returns a notifier posting to chatID in the given locale.
func NewNotifier(sender Sender, chatID int64, locale string) *Notifier {
	return &Notifier{sender: sender, chatID: chatID, locale: locale, async: true}
}

// ReportSubmitted announces a new incident report. It never blocks the caller
// and failures are only logged.
func (n *Notifier) ReportSubmitted(report models.IncidentReport) {
	text := formatters.FormatReportMessage(report, n.locale)
	send := func() {
		if _, err := SendText(n.sender, n.chatID, text, tgbotapi.ModeMarkdown); err != nil {
			log.Errorf("Notifier.ReportSubmitted: отчёт %s не отправлен: %v", report.ID, err)
		}
	}
	if n.async {
		go send()
		return
	}
	send()
}

// SendDigest posts the dashboard summary followed by the workbook.
func (n *Notifier) SendDigest(d models.Dashboard, fileName string, workbook []byte) error {
	if _, err := SendText(n.sender, n.chatID, formatters.FormatDailyDigest(d, n.locale), tgbotapi.ModeMarkdown); err != nil {
		return fmt.Errorf("SendDigest: сводка: %w", err)
	}
	if len(workbook) == 0 {
		return nil
	}
	if _, err := SendDocument(n.sender, n.chatID, fileName, workbook, d.Date); err != nil {
		return fmt.Errorf("SendDigest: файл: %w", err)
	}
	return nil
}
