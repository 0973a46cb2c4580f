package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentGift     PaymentMethod = "gift"
	PaymentSplit    PaymentMethod = "split"
	PaymentCourtesy PaymentMethod = "courtesy"
	PaymentOnline   PaymentMethod = "online"
	PaymentCard     PaymentMethod = "card"
	PaymentLoyalty  PaymentMethod = "loyalty"
)

// PaymentMethods все поддерживаемые способы оплаты
var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentGift, PaymentSplit, PaymentCourtesy, PaymentOnline, PaymentCard, PaymentLoyalty,
}

// IsValid проверяет, что способ оплаты поддерживается
func (m PaymentMethod) IsValid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// FormatPaymentRef номер чека: код филиала + порядковый номер из 6 цифр
func FormatPaymentRef(branchCode string, serial int64) string {
	return fmt.Sprintf("%s%0*d", branchCode, PaymentSerialDigits, serial)
}

// Sale продажа, созданная при оплате записи
type Sale struct {
	ID            int64
	PaymentRef    string
	PaymentMethod PaymentMethod
	AppointmentID int64
	ClientID      *int64
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Tips          decimal.Decimal
	Discount      decimal.Decimal
	Lines         []*SaleLine
	CreatedAt     time.Time
}

// SaleLine оплаченная услуга
type SaleLine struct {
	ID               int64
	SaleID           int64
	ServiceID        string
	CatalogServiceID int64
	Name             string
	StaffID          int64
	StaffName        string
	ClientName       string
	Price            decimal.Decimal
	Tip              decimal.Decimal
}

// SalesLogEntry строка журнала продаж (одна на каждую проданную услугу)
type SalesLogEntry struct {
	ID             int64
	SaleDate       time.Time
	ServiceID      string
	Location       string
	Type           string
	Item           string
	Category       string
	Client         string
	TeamMember     string
	Channel        string
	GrossSales     decimal.Decimal
	ItemDiscounts  decimal.Decimal
	CartDiscounts  decimal.Decimal
	TotalDiscounts decimal.Decimal
	Refunds        decimal.Decimal
	NetSales       decimal.Decimal
	Taxes          decimal.Decimal
	TotalSales     decimal.Decimal
	PaymentType    PaymentMethod
	Tip            decimal.Decimal
	PaymentRef     string
}

// NewSalesLogEntry строит строку журнала продаж по оплаченной услуге
// Скидки и возвраты всегда 0, налог 5% от цены с чаевыми.
func NewSalesLogEntry(location string, sale *Sale, line *SaleLine, category string) *SalesLogEntry {
	amount := line.Price.Add(line.Tip)
	return &SalesLogEntry{
		SaleDate:       sale.CreatedAt,
		ServiceID:      line.ServiceID,
		Location:       location,
		Type:           SalesLogTypeService,
		Item:           line.Name,
		Category:       category,
		Client:         line.ClientName,
		TeamMember:     line.StaffName,
		Channel:        SalesLogChannel,
		GrossSales:     amount,
		ItemDiscounts:  decimal.Zero,
		CartDiscounts:  decimal.Zero,
		TotalDiscounts: decimal.Zero,
		Refunds:        decimal.Zero,
		NetSales:       amount,
		Taxes:          TaxOf(amount),
		TotalSales:     amount,
		PaymentType:    sale.PaymentMethod,
		Tip:            line.Tip,
		PaymentRef:     sale.PaymentRef,
	}
}

// SalesLogFilter фильтр журнала продаж
type SalesLogFilter struct {
	Search     string
	TeamMember string
	From       *time.Time
	To         *time.Time
	Limit      uint64
}

// SalesLogHeaders заголовки колонок журнала продаж (для выгрузки)
var SalesLogHeaders = []string{
	"Date",
	"Service ID",
	"Location",
	"Type",
	"Item",
	"Category",
	"Client",
	"Team member",
	"Channel",
	"Gross sales",
	"Item discounts",
	"Cart discounts",
	"Total discounts",
	"Refunds",
	"Net sales",
	"Taxes on net sales",
	"Total sales",
	"Payment type",
}
