package kiosk

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/attendance"
	"DriverDesk/internal/models"
	"DriverDesk/internal/roster"
)

// Drivers returns a copy of the roster.
func (s *Service) Drivers() []models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.drivers)
}

// Driver looks up one roster entry.
func (s *Service) Driver(id string) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.FindDriver(s.drivers, id)
}

// AddDriver validates and appends a new roster entry.
func (s *Service) AddDriver(ctx context.Context, d models.Driver) (models.Driver, error) {
	d, err := roster.ValidateDriver(d)
	if err != nil {
		return d, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := models.FindDriver(s.drivers, d.ID); exists {
		return d, ErrDriverExists
	}
	s.drivers = append(s.drivers, d)
	s.persistDrivers(ctx)
	log.Infof("AddDriver: добавлен водитель %s (%s)", d.ID, d.Name)
	return d, nil
}

// UpdateDriver replaces the entry with the given id. The id itself cannot change.
// Events already logged keep their snapshot.
func (s *Service) UpdateDriver(ctx context.Context, id string, d models.Driver) (models.Driver, error) {
	d.ID = id
	d, err := roster.ValidateDriver(d)
	if err != nil {
		return d, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID == d.ID {
			s.drivers[i] = d
			s.persistDrivers(ctx)
			log.Infof("UpdateDriver: обновлён водитель %s", d.ID)
			return d, nil
		}
	}
	return d, attendance.ErrDriverNotFound
}

// DeleteDriver removes a roster entry.
func (s *Service) DeleteDriver(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers = append(s.drivers[:i:i], s.drivers[i+1:]...)
			s.persistDrivers(ctx)
			log.Infof("DeleteDriver: удалён водитель %s", id)
			return nil
		}
	}
	return attendance.ErrDriverNotFound
}

// ImportRoster replaces the roster with the parsed file. A header error
// leaves the roster unchanged.
func (s *Service) ImportRoster(ctx context.Context, r io.Reader) (*roster.ImportResult, error) {
	res, err := roster.ParseCSV(r)
	if err != nil {
		log.Warnf("ImportRoster: импорт отклонён: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = cloneSlice(res.Drivers)
	s.persistDrivers(ctx)
	log.Infof("ImportRoster: импортировано водителей: %d, пропущено строк: %d", len(res.Drivers), res.Skipped)
	return res, nil
}
