package utils

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	log "github.com/sirupsen/logrus"
)

// BadgePayload is the text encoded in a driver badge; the kiosk scanner
// types it back as the driver id.
func BadgePayload(driverID string) (string, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return "", fmt.Errorf("empty driver id")
	}
	return driverID, nil
}

// GenerateBadgeQRCode генерирует PNG с QR-кодом идентификатора водителя.
func GenerateBadgeQRCode(driverID string, size int) ([]byte, error) {
	payload, err := BadgePayload(driverID)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	// qrcode.Medium - уровень коррекции ошибок.
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		log.Errorf("GenerateBadgeQRCode: ошибка кодирования QR-кода для '%s': %v", payload, err)
		return nil, err
	}
	return png, nil
}
