package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	phoneDigits   = regexp.MustCompile(`[^\d+]`)
	frLocalPhone  = regexp.MustCompile(`^0[1-9]\d{8}$`)
	intlPhone     = regexp.MustCompile(`^\+\d{8,15}$`)
	plateAllowed  = regexp.MustCompile(`^[A-Z0-9-]+$`)
	plateSpacesRe = regexp.MustCompile(`\s+`)
)

// ValidatePhoneNumber проверяет и нормализует номер телефона.
// French local numbers (0XXXXXXXXX) become +33XXXXXXXXX; international numbers
// are kept. An empty input is valid and stays empty.
func ValidatePhoneNumber(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}
	digits := phoneDigits.ReplaceAllString(phone, "")
	if strings.HasPrefix(digits, "00") {
		digits = "+" + digits[2:]
	}
	switch {
	case frLocalPhone.MatchString(digits):
		return "+33" + digits[1:], nil
	case intlPhone.MatchString(digits):
		return digits, nil
	}
	return "", fmt.Errorf("invalid phone number %q", phone)
}

// NormalizePlate upper-cases a plate and collapses inner spaces into dashes.
func NormalizePlate(plate string) (string, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return "", nil
	}
	plate = plateSpacesRe.ReplaceAllString(plate, "-")
	if !plateAllowed.MatchString(plate) {
		return "", fmt.Errorf("invalid plate %q", plate)
	}
	return plate, nil
}

// ParseDay разбирает дату "YYYY-MM-DD" в локальной зоне loc.
// An empty string yields the day of now.
func ParseDay(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.In(loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	// noon keeps the day stable across DST changes
	return day.Add(12 * time.Hour), nil
}
