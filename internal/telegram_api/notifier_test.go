package telegram_api

import (
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"DriverDesk/internal/models"
)

type fakeSender struct {
	sent    []tgbotapi.Chattable
	failMD  bool
	failAll bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.failAll {
		return tgbotapi.Message{}, errors.New("network down")
	}
	if m, ok := c.(tgbotapi.MessageConfig); ok && f.failMD && m.ParseMode != "" {
		return tgbotapi.Message{}, errors.New("Bad Request: can't parse entities")
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func TestSendTextFallsBackToPlain(t *testing.T) {
	s := &fakeSender{failMD: true}
	if _, err := SendText(s, 42, "*bold", tgbotapi.ModeMarkdown); err != nil {
		t.Fatal(err)
	}
	if len(s.sent) != 1 || s.sent[0].(tgbotapi.MessageConfig).ParseMode != "" {
		t.Fatalf("sent = %+v", s.sent)
	}
}

func TestNotifierReportSubmitted(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifier(s, 42, "fr")
	n.async = false

	n.ReportSubmitted(models.IncidentReport{
		ID:          "r1",
		Event:       models.EventKey{DriverID: "D1", Timestamp: time.Date(2024, 3, 12, 17, 0, 0, 0, time.UTC)},
		DriverName:  "Alice",
		Saturations: []models.LockerSaturation{{Name: "Locker Gare"}},
	})
	if len(s.sent) != 1 {
		t.Fatalf("sent %d messages", len(s.sent))
	}
	msg := s.sent[0].(tgbotapi.MessageConfig)
	if msg.ChatID != 42 || !strings.Contains(msg.Text, "Alice") || !strings.Contains(msg.Text, "Locker Gare") {
		t.Errorf("message = %+v", msg)
	}
}

func TestNotifierReportSubmittedSwallowsErrors(t *testing.T) {
	n := NewNotifier(&fakeSender{failAll: true}, 42, "en")
	n.async = false
	n.ReportSubmitted(models.IncidentReport{ID: "r1"})
}

func TestSendDigest(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifier(s, 42, "en")
	if err := n.SendDigest(models.Dashboard{Date: "2024-03-12"}, "checkins.xlsx", []byte("PK")); err != nil {
		t.Fatal(err)
	}
	if len(s.sent) != 2 {
		t.Fatalf("sent %d, want text + document", len(s.sent))
	}
	if _, ok := s.sent[1].(tgbotapi.DocumentConfig); !ok {
		t.Errorf("second send is %T", s.sent[1])
	}

	if err := NewNotifier(&fakeSender{failAll: true}, 42, "en").SendDigest(models.Dashboard{}, "x.xlsx", nil); err == nil {
		t.Error("expected error")
	}
}
