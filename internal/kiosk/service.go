// Package kiosk owns the roster, the check-in log and the incident reports of
// one site. All mutations go through Service, one at a time.
package kiosk

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/models"
	"DriverDesk/internal/roster"
	"DriverDesk/internal/storage"
)

var (
	ErrDriverExists   = errors.New("driver id already exists")
	ErrEventNotFound  = errors.New("check-in event not found")
	ErrNotReturnEvent = errors.New("event is not a return")
	ErrReportExists   = errors.New("a report already exists for this return")
	ErrEventNotToday  = errors.New("return event is not from today")
	ErrInvalidReport  = errors.New("invalid report")
)

// Notifier is told about submitted reports. Implementations must not block.
type Notifier interface {
	ReportSubmitted(report models.IncidentReport)
}

// Options configures a Service.
type Options struct {
	Location *time.Location
	Clock    func() time.Time
	Notifier Notifier
}

// Service - единственный владелец состояния киоска.
type Service struct {
	mu       sync.Mutex
	repo     *storage.Repository
	loc      *time.Location
	clock    func() time.Time
	notifier Notifier

	drivers []models.Driver
	events  []models.CheckinEvent
	reports []models.IncidentReport
}

// New loads the three collections. Unreadable collections fall back to the
// seed roster or to empty ones; the error is logged and the service starts anyway.
func New(ctx context.Context, repo *storage.Repository, opts Options) *Service {
	s := &Service{
		repo:     repo,
		loc:      opts.Location,
		clock:    opts.Clock,
		notifier: opts.Notifier,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	drivers, found, err := repo.LoadDrivers(ctx)
	switch {
	case err != nil:
		log.Errorf("kiosk.New: ошибка чтения реестра, используется встроенный список: %v", err)
		s.drivers = roster.Seed()
	case !found:
		log.Info("kiosk.New: реестр не найден, используется встроенный список")
		s.drivers = roster.Seed()
	default:
		s.drivers = drivers
	}

	if s.events, err = repo.LoadCheckins(ctx); err != nil {
		log.Errorf("kiosk.New: ошибка чтения журнала отметок, начинаем с пустого: %v", err)
		s.events = nil
	}
	if s.reports, err = repo.LoadReports(ctx); err != nil {
		log.Errorf("kiosk.New: ошибка чтения отчётов, начинаем с пустого списка: %v", err)
		s.reports = nil
	}

	log.Infof("kiosk.New: загружено водителей: %d, отметок: %d, отчётов: %d", len(s.drivers), len(s.events), len(s.reports))
	return s
}

// Now returns the current instant in the site's location.
func (s *Service) Now() time.Time {
	return s.clock().In(s.loc)
}

// Location returns the site's time zone.
func (s *Service) Location() *time.Location { return s.loc }

// Snapshot returns copies of the event log and the reports.
func (s *Service) Snapshot() ([]models.CheckinEvent, []models.IncidentReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.events), cloneSlice(s.reports)
}

// persist* write the whole collection. A failed write is logged and the
// in-memory state stays authoritative for this process.
func (s *Service) persistDrivers(ctx context.Context) {
	if err := s.repo.SaveDrivers(ctx, s.drivers); err != nil {
		log.Errorf("kiosk: не удалось сохранить реестр: %v", err)
	}
}

func (s *Service) persistEvents(ctx context.Context) {
	if err := s.repo.SaveCheckins(ctx, s.events); err != nil {
		log.Errorf("kiosk: не удалось сохранить журнал отметок: %v", err)
	}
}

func (s *Service) persistReports(ctx context.Context) {
	if err := s.repo.SaveReports(ctx, s.reports); err != nil {
		log.Errorf("kiosk: не удалось сохранить отчёты: %v", err)
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
