package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPaymentRef(t *testing.T) {
	assert.Equal(t, "LushwaysBarsha000001", FormatPaymentRef("LushwaysBarsha", 1))
	assert.Equal(t, "LushwaysBarsha123456", FormatPaymentRef("LushwaysBarsha", 123456))
	assert.Equal(t, "LushwaysBarsha1234567", FormatPaymentRef("LushwaysBarsha", 1234567))
}

func TestPaymentMethod_IsValid(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, PaymentMethod("bitcoin").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestNewSalesLogEntry(t *testing.T) {
	sale := &Sale{
		PaymentRef:    "LushwaysBarsha000042",
		PaymentMethod: PaymentCard,
		CreatedAt:     time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC),
	}
	line := &SaleLine{
		ServiceID:  "A1B2C3D4",
		Name:       "Blow dry",
		StaffName:  "Amira",
		ClientName: "Fatima",
		Price:      decimal.NewFromInt(100),
		Tip:        decimal.NewFromInt(10),
	}

	entry := NewSalesLogEntry("Lushways Salon - Barsha", sale, line, "Hair")

	assert.Equal(t, "Service", entry.Type)
	assert.Equal(t, "Offline", entry.Channel)
	assert.Equal(t, "Lushways Salon - Barsha", entry.Location)
	assert.Equal(t, "110.00", FormatMoney(entry.GrossSales))
	assert.Equal(t, "110.00", FormatMoney(entry.NetSales))
	assert.Equal(t, "110.00", FormatMoney(entry.TotalSales))
	assert.Equal(t, "5.50", FormatMoney(entry.Taxes))
	assert.True(t, entry.TotalDiscounts.IsZero())
	assert.True(t, entry.Refunds.IsZero())
	assert.Equal(t, PaymentCard, entry.PaymentType)
	assert.Equal(t, "LushwaysBarsha000042", entry.PaymentRef)
	assert.Len(t, SalesLogHeaders, 18)
}
