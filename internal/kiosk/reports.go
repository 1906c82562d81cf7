package kiosk

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/models"
	"DriverDesk/internal/utils"
)

// findEvent returns the logged event with the given identity.
func (s *Service) findEvent(key models.EventKey) (models.CheckinEvent, bool) {
	for _, e := range s.events {
		if e.Key().Matches(key) {
			return e, true
		}
	}
	return models.CheckinEvent{}, false
}

func (s *Service) hasReport(key models.EventKey) bool {
	for _, r := range s.reports {
		if r.Event.Matches(key) {
			return true
		}
	}
	return false
}

// checkEligible: the event exists, is a Return of today and has no report yet.
func (s *Service) checkEligible(key models.EventKey) (models.CheckinEvent, error) {
	e, ok := s.findEvent(key)
	if !ok {
		return e, ErrEventNotFound
	}
	if e.Kind != models.KindReturn {
		return e, ErrNotReturnEvent
	}
	if !attendance.SameDay(e.Timestamp, s.Now()) {
		return e, ErrEventNotToday
	}
	if s.hasReport(key) {
		return e, ErrReportExists
	}
	return e, nil
}

// CheckEligible reports whether a report may be opened for the event.
func (s *Service) CheckEligible(key models.EventKey) (models.CheckinEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkEligible(key)
}

// EligibleReturns lists today's Return events that have no report, newest first.
func (s *Service) EligibleReturns() []models.CheckinEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CheckinEvent
	for _, e := range attendance.EventsOn(s.events, s.Now()) {
		if e.Kind == models.KindReturn && !s.hasReport(e.Key()) {
			out = append(out, e)
		}
	}
	return attendance.SortByTimeDesc(out)
}

// SubmitReport turns a draft into a report attached to its Return event.
func (s *Service) SubmitReport(ctx context.Context, draft models.ReportDraft) (models.IncidentReport, error) {
	if err := validateDraft(draft); err != nil {
		return models.IncidentReport{}, err
	}

	s.mu.Lock()
	ev, err := s.checkEligible(draft.Event)
	if err != nil {
		s.mu.Unlock()
		return models.IncidentReport{}, err
	}
	report := models.IncidentReport{
		ID:                utils.GenerateUUID(),
		Event:             ev.Key(),
		DriverName:        ev.Driver.Name,
		Subcontractor:     ev.Driver.Subcontractor,
		Tour:              ev.Driver.Tour,
		Letter:            draft.Letter,
		Saturations:       cloneSlice(draft.Saturations),
		MissingDeliveries: cloneSlice(draft.MissingDeliveries),
		ClosedPoints:      cloneSlice(draft.ClosedPoints),
		Notes:             strings.TrimSpace(draft.Notes),
		CreatedAt:         s.Now().Truncate(time.Millisecond),
	}
	s.reports = append(s.reports, report)
	s.persistReports(ctx)
	s.mu.Unlock()

	log.Infof("SubmitReport: отчёт %s для %s, инцидентов: %d", report.ID, report.Event, report.IncidentCount())
	if s.notifier != nil {
		s.notifier.ReportSubmitted(report)
	}
	return report, nil
}

func validateDraft(d models.ReportDraft) error {
	for i, c := range d.ClosedPoints {
		if !c.Reason.Valid() {
			return fmt.Errorf("%w: closed point %d has unknown reason %q", ErrInvalidReport, i, c.Reason)
		}
	}
	for i, m := range d.MissingDeliveries {
		if m.Parcels < 0 {
			return fmt.Errorf("%w: missing delivery %d has negative parcel count", ErrInvalidReport, i)
		}
	}
	return nil
}

// Reports returns the reports created on day.
func (s *Service) Reports(day time.Time) []models.IncidentReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	day = day.In(s.loc)
	var out []models.IncidentReport
	for _, r := range s.reports {
		if attendance.SameDay(r.CreatedAt, day) {
			out = append(out, r)
		}
	}
	return out
}

// PurgeReports deletes every report and returns how many there were.
func (s *Service) PurgeReports(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.reports)
	s.reports = nil
	s.persistReports(ctx)
	log.Infof("PurgeReports: удалено отчётов: %d", n)
	return n
}
