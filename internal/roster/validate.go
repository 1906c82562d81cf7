package roster

import (
	"errors"
	"fmt"

	"DriverDesk/internal/models"
	"DriverDesk/internal/utils"
)

// ErrInvalidDriver wraps every validation failure of a roster entry.
var ErrInvalidDriver = errors.New("invalid driver")

// ValidateDriver normalizes d and checks the fields an administrator must fill.
func ValidateDriver(d models.Driver) (models.Driver, error) {
	d = d.Normalize()
	switch {
	case d.ID == "":
		return d, fmt.Errorf("%w: id is required", ErrInvalidDriver)
	case d.Name == "":
		return d, fmt.Errorf("%w: name is required", ErrInvalidDriver)
	case d.Subcontractor == "":
		return d, fmt.Errorf("%w: subcontractor is required", ErrInvalidDriver)
	}

	plate, err := utils.NormalizePlate(d.Plate)
	if err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidDriver, err)
	}
	d.Plate = plate

	phone, err := utils.ValidatePhoneNumber(d.Phone)
	if err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidDriver, err)
	}
	d.Phone = phone
	return d, nil
}
