package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogService услуга из меню салона
type CatalogService struct {
	ID       int64
	Name     string
	Duration string // "1h", "20min"
	Price    string // "AED 100", "from AED 220"
	Category string
}

// DurationMinutes длительность услуги в минутах
func (s *CatalogService) DurationMinutes() int {
	return ParseDurationMinutes(s.Duration)
}

// PriceAmount цена услуги без префикса валюты
func (s *CatalogService) PriceAmount() (decimal.Decimal, error) {
	return ParsePrice(s.Price)
}

// MatchesName проверяет вхождение строки в название (без учета регистра)
func (s *CatalogService) MatchesName(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), strings.ToLower(search))
}
