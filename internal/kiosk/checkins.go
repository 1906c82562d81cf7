package kiosk

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/models"
)

// Scan validates a scan and appends the resulting event.
// Rejected scans leave the log untouched.
func (s *Service) Scan(ctx context.Context, req attendance.ScanRequest) (models.CheckinEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	ev, err := attendance.Accept(s.drivers, s.events, req, now)
	if err != nil {
		log.Infof("Scan: отклонено: id=%q kind=%s: %v", req.DriverID, req.Kind, err)
		return models.CheckinEvent{}, err
	}

	s.events = append(s.events, ev)
	s.persistEvents(ctx)
	log.Infof("Scan: принято: id=%s kind=%s at=%s", ev.Driver.ID, ev.Kind, ev.Timestamp.Format(time.RFC3339))
	return ev, nil
}

// Status returns the driver's status today and its latest same-day event.
func (s *Service) Status(driverID string) (attendance.Status, *models.CheckinEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := models.FindDriver(s.drivers, driverID)
	if !ok {
		return attendance.StatusNeutral, nil, attendance.ErrDriverNotFound
	}
	now := s.Now()
	last, found := attendance.LastEventToday(s.events, d.ID, now)
	if !found {
		return attendance.StatusNeutral, nil, nil
	}
	return attendance.StatusOf(s.events, d.ID, now), &last, nil
}

// PendingReturns lists drivers out today and not yet back.
func (s *Service) PendingReturns() []models.CheckinEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return attendance.PendingReturns(s.events, s.Now())
}

// Checkins returns the events of day, newest first.
func (s *Service) Checkins(day time.Time) []models.CheckinEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return attendance.SortByTimeDesc(attendance.EventsOn(s.events, day.In(s.loc)))
}

// PurgeOldCheckins removes events from before today and returns how many were removed.
func (s *Service) PurgeOldCheckins(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := attendance.StartOfDay(s.Now())
	kept := make([]models.CheckinEvent, 0, len(s.events))
	for _, e := range s.events {
		if !e.Timestamp.Before(start) {
			kept = append(kept, e)
		}
	}
	removed := len(s.events) - len(kept)
	if removed == 0 {
		return 0
	}
	s.events = kept
	s.persistEvents(ctx)
	log.Infof("PurgeOldCheckins: удалено отметок: %d", removed)
	return removed
}
