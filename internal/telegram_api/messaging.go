package telegram_api

import (
	"fmt"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"
)

// SendText отправляет текстовое сообщение. Если Telegram не смог разобрать
// разметку, сообщение повторно отправляется обычным текстом.
func SendText(sender Sender, chatID int64, text, parseMode string) (tgbotapi.Message, error) {
	if sender == nil {
		return tgbotapi.Message{}, fmt.Errorf("SendText: sender не инициализирован")
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode

	sent, err := sender.Send(msg)
	if err != nil && parseMode != "" && strings.Contains(err.Error(), "can't parse entities") {
		log.Warnf("SendText: ошибка разметки для chatID %d, повтор без форматирования: %v", chatID, err)
		msg.ParseMode = ""
		sent, err = sender.Send(msg)
	}
	if err != nil {
		log.Errorf("SendText: ОШИБКА отправки сообщения для chatID %d: %v", chatID, err)
		return tgbotapi.Message{}, err
	}
	return sent, nil
}

// SendDocument отправляет файл из памяти с подписью.
func SendDocument(sender Sender, chatID int64, name string, data []byte, caption string) (tgbotapi.Message, error) {
	if sender == nil {
		return tgbotapi.Message{}, fmt.Errorf("SendDocument: sender не инициализирован")
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = caption

	sent, err := sender.Send(doc)
	if err != nil {
		log.Errorf("SendDocument: ошибка отправки файла %s для chatID %d: %v", name, chatID, err)
		return tgbotapi.Message{}, err
	}
	log.Infof("SendDocument: файл %s отправлен в chatID %d", name, chatID)
	return sent, nil
}
