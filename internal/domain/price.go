package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice возвращается, когда строку цены нельзя разобрать
var ErrInvalidPrice = errors.New("domain: invalid price")

// pricePrefixes префиксы, которые срезаются перед разбором (порядок важен)
var pricePrefixes = []string{"from AED ", "AED "}

// ParsePrice разбирает строку цены вида "AED 100" или "from AED 220"
func ParsePrice(price string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(price)
	for _, prefix := range pricePrefixes {
		raw = strings.ReplaceAll(raw, prefix, "")
	}
	raw = strings.TrimSpace(raw)

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %q", ErrInvalidPrice, price)
	}
	return amount, nil
}

// FormatMoney форматирует сумму с двумя знаками после запятой
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
