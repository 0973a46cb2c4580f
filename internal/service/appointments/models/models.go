package models

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request модели

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	Reason      string  `json:"reason"`
	OtherReason *string `json:"otherReason,omitempty"`
}

// ClientAppointmentsRequest запрос истории записей клиента
type ClientAppointmentsRequest struct {
	ClientID int64
	Status   *string
}

// SlotCheckRequest запрос проверки занятости слота
type SlotCheckRequest struct {
	StaffID              int64
	Date                 time.Time
	Time                 types.TimeString
	ExcludeAppointmentID *int64
}

// Response модели

// ServiceResponse услуга записи
type ServiceResponse struct {
	ID               string  `json:"id"`
	CatalogServiceID int64   `json:"catalogServiceId"`
	Name             string  `json:"name"`
	Duration         string  `json:"duration"`
	DurationMinutes  int     `json:"durationMinutes"`
	Price            string  `json:"price"`
	Category         string  `json:"category,omitempty"`
	StaffID          int64   `json:"staffId"`
	StaffName        string  `json:"staffName,omitempty"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Tip              string  `json:"tip"`
	Completed        bool    `json:"completed"`
	PaymentRef       *string `json:"paymentRef,omitempty"`
}

// AppointmentResponse запись календаря
type AppointmentResponse struct {
	ID                 int64             `json:"id"`
	ClientID           *int64            `json:"clientId,omitempty"`
	ClientName         string            `json:"clientName"`
	StaffID            int64             `json:"staffId"`
	Date               string            `json:"date"`
	StartTime          string            `json:"startTime"`
	EndTime            string            `json:"endTime"`
	Notes              *string           `json:"notes,omitempty"`
	Status             string            `json:"status"`
	CancellationReason *string           `json:"cancellationReason,omitempty"`
	CancelledAt        *string           `json:"cancelledAt,omitempty"`
	PaymentRef         *string           `json:"paymentRef,omitempty"`
	Services           []ServiceResponse `json:"services"`
	CreatedAt          string            `json:"createdAt"`
	UpdatedAt          string            `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// SlotCheckResponse результат проверки слота
type SlotCheckResponse struct {
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Booked  bool   `json:"booked"`
}

// CheckoutLineResponse строка чека
type CheckoutLineResponse struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName,omitempty"`
	Price     string `json:"price"`
	Tip       string `json:"tip"`
}

// CheckoutResponse итоги к оплате
type CheckoutResponse struct {
	AppointmentID int64                  `json:"appointmentId"`
	ClientName    string                 `json:"clientName"`
	Lines         []CheckoutLineResponse `json:"lines"`
	Subtotal      string                 `json:"subtotal"`
	Tax           string                 `json:"tax"`
	Total         string                 `json:"total"`
	Tips          string                 `json:"tips"`
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ClientName:         a.DisplayClientName(),
		StaffID:            a.StaffID,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		Notes:              a.Notes,
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
		PaymentRef:         a.PaymentRef,
		Services:           make([]ServiceResponse, 0, len(a.Services)),
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	for _, s := range a.Services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}

	return resp
}

// FromDomainService конвертирует услугу записи в response
func FromDomainService(s *domain.AppointmentService) ServiceResponse {
	end, err := s.EndTime()
	if err != nil {
		end = s.StartTime
	}

	return ServiceResponse{
		ID:               s.ID,
		CatalogServiceID: s.CatalogServiceID,
		Name:             s.Name,
		Duration:         s.Duration,
		DurationMinutes:  s.DurationMinutes(),
		Price:            s.Price,
		Category:         s.Category,
		StaffID:          s.StaffID,
		StaffName:        s.StaffName,
		StartTime:        s.StartTime.String(),
		EndTime:          end.String(),
		Tip:              domain.FormatMoney(s.Tip),
		Completed:        s.Completed,
		PaymentRef:       s.PaymentRef,
	}
}

// FromDomainCheckout конвертирует расчет оплаты в response
func FromDomainCheckout(a *domain.Appointment, c *domain.Checkout) *CheckoutResponse {
	resp := &CheckoutResponse{
		AppointmentID: a.ID,
		ClientName:    a.DisplayClientName(),
		Lines:         make([]CheckoutLineResponse, 0, len(c.Lines)),
		Subtotal:      domain.FormatMoney(c.Subtotal),
		Tax:           domain.FormatMoney(c.Tax),
		Total:         domain.FormatMoney(c.Total),
		Tips:          domain.FormatMoney(c.Tips),
	}

	for _, l := range c.Lines {
		resp.Lines = append(resp.Lines, CheckoutLineResponse{
			ServiceID: l.ServiceID,
			Name:      l.Name,
			StaffID:   l.StaffID,
			StaffName: l.StaffName,
			Price:     domain.FormatMoney(l.Price),
			Tip:       domain.FormatMoney(l.Tip),
		})
	}

	return resp
}
