package models

import "strings"

// Driver - водитель из реестра (roster), управляется администратором.
// Driver is an entry of the administrator-managed roster.
type Driver struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Subcontractor string `json:"subcontractor"`
	Tour          string `json:"tour"`
	Plate         string `json:"plate,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// Normalize trims every field and upper-cases the plate.
func (d Driver) Normalize() Driver {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	d.Subcontractor = strings.TrimSpace(d.Subcontractor)
	d.Tour = strings.TrimSpace(d.Tour)
	d.Plate = strings.ToUpper(strings.TrimSpace(d.Plate))
	d.Phone = strings.TrimSpace(d.Phone)
	return d
}

// FindDriver returns the roster entry with the given id.
func FindDriver(roster []Driver, id string) (Driver, bool) {
	id = strings.TrimSpace(id)
	for _, d := range roster {
		if d.ID == id {
			return d, true
		}
	}
	return Driver{}, false
}
