package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewServiceLineID генерирует ID услуги в записи: 8 символов, верхний регистр
func NewServiceLineID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:ServiceLineIDLength])
}

// IsValidServiceLineID проверяет формат ID услуги в записи
func IsValidServiceLineID(id string) bool {
	if len(id) != ServiceLineIDLength {
		return false
	}
	for _, r := range id {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
