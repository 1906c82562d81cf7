package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/config"
	"DriverDesk/internal/kiosk"
	"DriverDesk/internal/models"
	"DriverDesk/internal/storage"
)

type fakeSender struct{ sent []tgbotapi.Chattable }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func command(chatID int64, text string) tgbotapi.Update {
	cmd := strings.Fields(text)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:     tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
	}}
}

func newHandler(t *testing.T) (*BotHandler, *fakeSender) {
	t.Helper()
	now := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := kiosk.New(context.Background(), storage.NewRepository(storage.NewMemoryBackend()),
		kiosk.Options{Location: time.UTC, Clock: func() time.Time { return now }})
	if _, err := svc.Scan(context.Background(), attendance.ScanRequest{DriverID: "CH001", Kind: models.KindDeparture}); err != nil {
		t.Fatal(err)
	}
	s := &fakeSender{}
	bh := NewBotHandler(HandlerDependencies{
		Config:  &config.Config{SupervisorChatID: 42, DefaultLocale: "en"},
		Sender:  s,
		Service: svc,
	})
	return bh, s
}

func TestHandleMessageIgnoresOtherChats(t *testing.T) {
	bh, s := newHandler(t)
	bh.HandleMessage(command(7, "/stats"))
	if len(s.sent) != 0 {
		t.Fatalf("answered a foreign chat: %+v", s.sent)
	}
}

func TestHandleMessageCommands(t *testing.T) {
	bh, s := newHandler(t)

	bh.HandleMessage(command(42, "/pending"))
	msg := s.sent[0].(tgbotapi.MessageConfig)
	if !strings.Contains(msg.Text, "PENDING RETURNS") || !strings.Contains(msg.Text, "CH001") {
		t.Errorf("/pending = %q", msg.Text)
	}

	bh.HandleMessage(command(42, "/stats"))
	if msg := s.sent[1].(tgbotapi.MessageConfig); !strings.Contains(msg.Text, "Check-ins: 1") {
		t.Errorf("/stats = %q", msg.Text)
	}

	bh.HandleMessage(command(42, "/export"))
	doc, ok := s.sent[2].(tgbotapi.DocumentConfig)
	if !ok || doc.Caption != "2024-03-12" {
		t.Errorf("/export sent %T %+v", s.sent[2], s.sent[2])
	}
}
