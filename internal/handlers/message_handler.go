package handlers

import (
	"bytes"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/export"
	"DriverDesk/internal/formatters"
	"DriverDesk/internal/telegram_api"
)

// HandleMessage обрабатывает входящие сообщения от Telegram.
// Only the configured supervisor chat is answered.
func (bh *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	message := update.Message
	chatID := message.Chat.ID
	if chatID != bh.Deps.Config.SupervisorChatID {
		log.Warnf("HandleMessage: сообщение из постороннего чата %d проигнорировано", chatID)
		return
	}
	if !message.IsCommand() {
		return
	}

	locale := bh.Deps.Config.DefaultLocale
	log.Infof("HandleMessage: команда /%s от chatID %d", message.Command(), chatID)

	switch message.Command() {
	case "start", "help":
		bh.sendMessage(chatID, formatters.FormatHelp(locale))
	case "stats":
		svc := bh.Deps.Service
		bh.sendMessage(chatID, formatters.FormatDailyDigest(svc.Dashboard(svc.Now(), locale), locale))
	case "pending":
		bh.sendMessage(chatID, formatters.FormatPendingReturns(bh.Deps.Service.PendingReturns(), locale))
	case "export":
		bh.sendCheckinsWorkbook(chatID, locale)
	default:
		bh.sendMessage(chatID, formatters.FormatHelp(locale))
	}
}

func (bh *BotHandler) sendMessage(chatID int64, text string) {
	if _, err := telegram_api.SendText(bh.Deps.Sender, chatID, text, tgbotapi.ModeMarkdown); err != nil {
		log.Errorf("sendMessage: chatID %d: %v", chatID, err)
	}
}

// sendCheckinsWorkbook отправляет книгу с отметками и отчётами за сегодня.
func (bh *BotHandler) sendCheckinsWorkbook(chatID int64, locale string) {
	svc := bh.Deps.Service
	day := svc.Now()

	var buf bytes.Buffer
	err := export.WriteXLSX(&buf,
		export.CheckinsTable(svc.Checkins(day), locale),
		export.ReportsTable(svc.Reports(day), locale),
	)
	if err != nil {
		log.Errorf("sendCheckinsWorkbook: ошибка создания Excel файла: %v", err)
		bh.sendMessage(chatID, "❌ Excel export failed.")
		return
	}
	name := export.FileName(constants.DatasetCheckins, day, "xlsx")
	if _, err := telegram_api.SendDocument(bh.Deps.Sender, chatID, name, buf.Bytes(), day.Format("2006-01-02")); err != nil {
		log.Errorf("sendCheckinsWorkbook: %v", err)
	}
}
