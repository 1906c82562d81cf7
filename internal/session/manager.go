package session

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/models"
)

// ErrDraftNotFound - на терминале нет открытого черновика.
var ErrDraftNotFound = errors.New("no open draft for this terminal")

// DraftTTL is how long an untouched draft survives before it is discarded.
const DraftTTL = 12 * time.Hour

// SessionManager управляет черновиками отчётов по терминалам киоска.
// SessionManager keeps one report draft per kiosk terminal.
type SessionManager struct {
	tempReports      map[string]TempReportData // Ключ: ID терминала / Key: terminal id
	tempReportsMutex sync.RWMutex
	clock            func() time.Time
}

// NewSessionManager создает и возвращает новый экземпляр SessionManager.
func NewSessionManager(clock func() time.Time) *SessionManager {
	if clock == nil {
		clock = time.Now
	}
	return &SessionManager{
		tempReports: make(map[string]TempReportData),
		clock:       clock,
	}
}

// StartDraft открывает черновик для события, заменяя предыдущий черновик терминала.
// Eligibility of the event is checked by the caller.
func (sm *SessionManager) StartDraft(terminalID string, event models.EventKey) TempReportData {
	now := sm.clock()
	draft := NewTempReport(terminalID, event, now)

	sm.tempReportsMutex.Lock()
	defer sm.tempReportsMutex.Unlock()
	sm.pruneLocked(now)
	sm.tempReports[terminalID] = draft
	log.Infof("SessionManager.StartDraft: черновик для терминала %s открыт, событие %s", terminalID, event)
	return draft
}

// GetDraft возвращает черновик терминала.
func (sm *SessionManager) GetDraft(terminalID string) (TempReportData, error) {
	sm.tempReportsMutex.RLock()
	defer sm.tempReportsMutex.RUnlock()
	d, ok := sm.tempReports[terminalID]
	if !ok || sm.clock().Sub(d.UpdatedAt) > DraftTTL {
		return TempReportData{}, ErrDraftNotFound
	}
	return d, nil
}

// UpdateDraft заменяет тело черновика. The linked event cannot change.
func (sm *SessionManager) UpdateDraft(terminalID string, body models.ReportDraft) (TempReportData, error) {
	sm.tempReportsMutex.Lock()
	defer sm.tempReportsMutex.Unlock()
	now := sm.clock()
	sm.pruneLocked(now)
	d, ok := sm.tempReports[terminalID]
	if !ok {
		return TempReportData{}, ErrDraftNotFound
	}
	body.Event = d.Draft.Event
	d.Draft = body
	d.UpdatedAt = now
	sm.tempReports[terminalID] = d
	return d, nil
}

// ClearDraft удаляет черновик терминала. Returns false when there was none.
func (sm *SessionManager) ClearDraft(terminalID string) bool {
	sm.tempReportsMutex.Lock()
	defer sm.tempReportsMutex.Unlock()
	_, ok := sm.tempReports[terminalID]
	delete(sm.tempReports, terminalID)
	if ok {
		log.Infof("SessionManager.ClearDraft: черновик терминала %s удален", terminalID)
	}
	return ok
}

// pruneLocked drops drafts untouched for longer than DraftTTL.
func (sm *SessionManager) pruneLocked(now time.Time) {
	for id, d := range sm.tempReports {
		if now.Sub(d.UpdatedAt) > DraftTTL {
			delete(sm.tempReports, id)
		}
	}
}
