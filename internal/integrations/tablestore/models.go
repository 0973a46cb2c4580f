package tablestore

import (
	"time"

	"github.com/shopspring/decimal"
)

// Названия таблиц удаленного хранилища
const (
	TableAppointments        = "appointments"
	TableAppointmentServices = "appointment_services"
	TableSales               = "sales"
	TableSalesServices       = "sales_services"
)

const statusCompleted = "completed"

// AppointmentRow строка таблицы appointments
type AppointmentRow struct {
	ClientID  *int64    `json:"client_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	InvoiceID string    `json:"invoice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentServiceRow строка таблицы appointment_services
type AppointmentServiceRow struct {
	AppointmentID int64           `json:"appointment_id"`
	ServiceID     int64           `json:"service_id"`
	TeamMemberID  int64           `json:"team_member_id"`
	StartTime     string          `json:"start_time"`
	Tip           decimal.Decimal `json:"tip"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
	Status        string          `json:"status"`
}

// SaleRow строка таблицы sales
type SaleRow struct {
	InvoiceID     string          `json:"invoice_id"`
	AppointmentID int64           `json:"appointment_id"`
	ClientID      *int64          `json:"client_id"`
	PaymentType   string          `json:"payment_type"`
	Total         decimal.Decimal `json:"total"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Tip           decimal.Decimal `json:"tip"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleServiceRow строка таблицы sales_services
type SaleServiceRow struct {
	SaleID       int64           `json:"sale_id"`
	ServiceID    int64           `json:"service_id"`
	TeamMemberID int64           `json:"team_member_id"`
	Tip          decimal.Decimal `json:"tip"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
}

type insertedRow struct {
	ID int64 `json:"id"`
}
