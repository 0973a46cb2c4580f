package domain

import (
	"github.com/shopspring/decimal"
)

// Checkout итоги оплаты записи
type Checkout struct {
	Lines    []CheckoutLine
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Tips     decimal.Decimal
}

// CheckoutLine строка чека
type CheckoutLine struct {
	ServiceID string
	Name      string
	StaffID   int64
	StaffName string
	Price     decimal.Decimal
	Tip       decimal.Decimal
}

// Amount цена услуги вместе с чаевыми
func (l CheckoutLine) Amount() decimal.Decimal {
	return l.Price.Add(l.Tip)
}

// CalculateCheckout считает итог: subtotal = сумма цен и чаевых, налог 5%, total = subtotal + налог
// Налог и итог округляются до центов.
func CalculateCheckout(services []*AppointmentService) (*Checkout, error) {
	checkout := &Checkout{
		Lines:    make([]CheckoutLine, 0, len(services)),
		Subtotal: decimal.Zero,
		Tips:     decimal.Zero,
	}

	for _, s := range services {
		price, err := ParsePrice(s.Price)
		if err != nil {
			return nil, err
		}

		line := CheckoutLine{
			ServiceID: s.ID,
			Name:      s.Name,
			StaffID:   s.StaffID,
			StaffName: s.StaffName,
			Price:     price,
			Tip:       s.Tip,
		}
		checkout.Lines = append(checkout.Lines, line)
		checkout.Subtotal = checkout.Subtotal.Add(line.Amount())
		checkout.Tips = checkout.Tips.Add(s.Tip)
	}

	checkout.Tax = TaxOf(checkout.Subtotal)
	checkout.Total = checkout.Subtotal.Add(checkout.Tax).Round(2)
	return checkout, nil
}

// TaxOf налог с суммы, округленный до центов
func TaxOf(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(TaxRate).Round(2)
}
