package attendance

import (
	"errors"
	"time"

	"DriverDesk/internal/models"
)

var (
	// ErrDriverNotFound - идентификатор не найден в реестре.
	ErrDriverNotFound = errors.New("driver not found")
	// ErrDuplicateDeparture - у водителя уже есть открытый выезд.
	ErrDuplicateDeparture = errors.New("driver already departed and has not returned")
	// ErrReturnWithoutDeparture - возврат без выезда за сегодня.
	ErrReturnWithoutDeparture = errors.New("return without a departure today")
	// ErrInvalidKind - неизвестный тип события.
	ErrInvalidKind = errors.New("invalid event kind")
)

// CheckSequence applies the sequencing rules to a requested kind given the
// kind of the driver's latest same-day event (hasLast is false when there is none).
func CheckSequence(requested models.EventKind, lastKind models.EventKind, hasLast bool) error {
	switch requested {
	case models.KindDeparture:
		if hasLast && lastKind == models.KindDeparture {
			return ErrDuplicateDeparture
		}
	case models.KindReturn:
		if !hasLast || lastKind != models.KindDeparture {
			return ErrReturnWithoutDeparture
		}
	default:
		return ErrInvalidKind
	}
	return nil
}

// ScanRequest - попытка сканирования на киоске.
type ScanRequest struct {
	DriverID   string
	Kind       models.EventKind
	HasUniform *bool
	Comment    string
}

// Accept validates req against the roster and the log and, when accepted,
// returns the event to append. Neither roster nor events are modified.
func Accept(roster []models.Driver, events []models.CheckinEvent, req ScanRequest, now time.Time) (models.CheckinEvent, error) {
	if !req.Kind.Valid() {
		return models.CheckinEvent{}, ErrInvalidKind
	}
	driver, ok := models.FindDriver(roster, req.DriverID)
	if !ok {
		return models.CheckinEvent{}, ErrDriverNotFound
	}

	last, hasLast := LastEventToday(events, driver.ID, now)
	if err := CheckSequence(req.Kind, last.Kind, hasLast); err != nil {
		return models.CheckinEvent{}, err
	}

	ev := models.CheckinEvent{
		Driver:    driver,
		Timestamp: now.Truncate(time.Millisecond),
		Kind:      req.Kind,
	}
	if req.Kind == models.KindDeparture {
		if req.HasUniform != nil {
			v := *req.HasUniform
			ev.HasUniform = &v
		}
		ev.Comment = req.Comment
	}
	return ev, nil
}
