package models

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Request модели

// SalesLogRequest параметры журнала продаж
type SalesLogRequest struct {
	Search string
	From   *time.Time
	To     *time.Time
}

// TipsRequest параметры отчета по чаевым
type TipsRequest struct {
	TeamMember string
	From       *time.Time
	To         *time.Time
}

// TeamPerformanceRequest период отчета по мастерам
type TeamPerformanceRequest struct {
	From time.Time
	To   time.Time
}

// Response модели

// SalesLogEntryResponse строка журнала продаж
type SalesLogEntryResponse struct {
	Date           string `json:"date"`
	ServiceID      string `json:"serviceId"`
	Location       string `json:"location"`
	Type           string `json:"type"`
	Item           string `json:"item"`
	Category       string `json:"category"`
	Client         string `json:"client"`
	TeamMember     string `json:"teamMember"`
	Channel        string `json:"channel"`
	GrossSales     string `json:"grossSales"`
	ItemDiscounts  string `json:"itemDiscounts"`
	CartDiscounts  string `json:"cartDiscounts"`
	TotalDiscounts string `json:"totalDiscounts"`
	Refunds        string `json:"refunds"`
	NetSales       string `json:"netSales"`
	Taxes          string `json:"taxes"`
	TotalSales     string `json:"totalSales"`
	PaymentType    string `json:"paymentType"`
	Tip            string `json:"tip"`
	PaymentRef     string `json:"paymentRef"`
}

// SalesLogResponse журнал продаж
type SalesLogResponse struct {
	Entries []SalesLogEntryResponse `json:"entries"`
}

// TipsRowResponse чаевые мастера
type TipsRowResponse struct {
	TeamMember string `json:"teamMember"`
	Collected  string `json:"collected"`
	Refunded   string `json:"refunded"`
	Total      string `json:"total"`
}

// TipsSummaryResponse сводка по чаевым
type TipsSummaryResponse struct {
	Rows  []TipsRowResponse `json:"rows"`
	Total TipsRowResponse   `json:"total"`
}

// TipDetailResponse строка детализации чаевых
type TipDetailResponse struct {
	Date       string `json:"date"`
	Item       string `json:"item"`
	Client     string `json:"client"`
	Tip        string `json:"tip"`
	PaymentRef string `json:"paymentRef"`
}

// TipDetailsResponse детализация чаевых мастера
type TipDetailsResponse struct {
	TeamMember string              `json:"teamMember"`
	Entries    []TipDetailResponse `json:"entries"`
	Total      string              `json:"total"`
}

// TeamMemberPerformanceResponse показатели мастера
type TeamMemberPerformanceResponse struct {
	StaffID           int64   `json:"staffId"`
	TeamMember        string  `json:"teamMember"`
	Sales             string  `json:"sales"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	Clients           int     `json:"clients"`
	ReturningPercent  float64 `json:"returningPercent"`
	BookedHours       float64 `json:"bookedHours"`
	ScheduledHours    float64 `json:"scheduledHours"`
	OccupancyPercent  float64 `json:"occupancyPercent"`
}

// TeamPerformanceResponse отчет по мастерам за период
type TeamPerformanceResponse struct {
	From    string                          `json:"from"`
	To      string                          `json:"to"`
	Members []TeamMemberPerformanceResponse `json:"members"`
}

// SaleLineResponse оплаченная услуга
type SaleLineResponse struct {
	ServiceID  string `json:"serviceId"`
	Name       string `json:"name"`
	StaffID    int64  `json:"staffId"`
	StaffName  string `json:"staffName"`
	ClientName string `json:"clientName"`
	Price      string `json:"price"`
	Tip        string `json:"tip"`
}

// SaleResponse продажа
type SaleResponse struct {
	ID            int64              `json:"id"`
	PaymentRef    string             `json:"paymentRef"`
	PaymentMethod string             `json:"paymentMethod"`
	AppointmentID int64              `json:"appointmentId"`
	ClientID      *int64             `json:"clientId,omitempty"`
	Subtotal      string             `json:"subtotal"`
	Tax           string             `json:"tax"`
	Total         string             `json:"total"`
	Tips          string             `json:"tips"`
	Discount      string             `json:"discount"`
	Lines         []SaleLineResponse `json:"lines"`
	CreatedAt     string             `json:"createdAt"`
}

// FromDomainSalesLog конвертирует журнал продаж в response
func FromDomainSalesLog(entries []*domain.SalesLogEntry) *SalesLogResponse {
	resp := &SalesLogResponse{Entries: make([]SalesLogEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, SalesLogEntryResponse{
			Date:           e.SaleDate.Format(time.RFC3339),
			ServiceID:      e.ServiceID,
			Location:       e.Location,
			Type:           e.Type,
			Item:           e.Item,
			Category:       e.Category,
			Client:         e.Client,
			TeamMember:     e.TeamMember,
			Channel:        e.Channel,
			GrossSales:     domain.FormatMoney(e.GrossSales),
			ItemDiscounts:  domain.FormatMoney(e.ItemDiscounts),
			CartDiscounts:  domain.FormatMoney(e.CartDiscounts),
			TotalDiscounts: domain.FormatMoney(e.TotalDiscounts),
			Refunds:        domain.FormatMoney(e.Refunds),
			NetSales:       domain.FormatMoney(e.NetSales),
			Taxes:          domain.FormatMoney(e.Taxes),
			TotalSales:     domain.FormatMoney(e.TotalSales),
			PaymentType:    string(e.PaymentType),
			Tip:            domain.FormatMoney(e.Tip),
			PaymentRef:     e.PaymentRef,
		})
	}
	return resp
}

// FromDomainTipsSummary конвертирует сводку по чаевым в response
func FromDomainTipsSummary(s *domain.TipsSummary) *TipsSummaryResponse {
	resp := &TipsSummaryResponse{
		Rows:  make([]TipsRowResponse, 0, len(s.Rows)),
		Total: fromDomainTipsRow(s.Total),
	}
	for _, r := range s.Rows {
		resp.Rows = append(resp.Rows, fromDomainTipsRow(r))
	}
	return resp
}

func fromDomainTipsRow(r domain.TipsRow) TipsRowResponse {
	return TipsRowResponse{
		TeamMember: r.TeamMember,
		Collected:  domain.FormatMoney(r.Collected),
		Refunded:   domain.FormatMoney(r.Refunded),
		Total:      domain.FormatMoney(r.Total),
	}
}

// FromDomainTipDetails конвертирует детализацию чаевых в response
func FromDomainTipDetails(d *domain.TipDetails) *TipDetailsResponse {
	resp := &TipDetailsResponse{
		TeamMember: d.TeamMember,
		Entries:    make([]TipDetailResponse, 0, len(d.Entries)),
		Total:      domain.FormatMoney(d.Total),
	}
	for _, e := range d.Entries {
		resp.Entries = append(resp.Entries, TipDetailResponse{
			Date:       e.Date.Format(time.RFC3339),
			Item:       e.Item,
			Client:     e.Client,
			Tip:        domain.FormatMoney(e.Tip),
			PaymentRef: e.PaymentRef,
		})
	}
	return resp
}

// FromDomainTeamPerformance конвертирует показатели мастеров в response
func FromDomainTeamPerformance(from, to time.Time, perf []domain.TeamPerformance) *TeamPerformanceResponse {
	resp := &TeamPerformanceResponse{
		From:    from.Format(domain.DateFormat),
		To:      to.Format(domain.DateFormat),
		Members: make([]TeamMemberPerformanceResponse, 0, len(perf)),
	}
	for _, p := range perf {
		resp.Members = append(resp.Members, TeamMemberPerformanceResponse{
			StaffID:           p.StaffID,
			TeamMember:        p.TeamMember,
			Sales:             domain.FormatMoney(p.Sales),
			TotalBookings:     p.TotalBookings,
			CompletedBookings: p.CompletedBookings,
			Clients:           p.Clients,
			ReturningPercent:  p.ReturningPercent,
			BookedHours:       p.BookedHours,
			ScheduledHours:    p.ScheduledHours,
			OccupancyPercent:  p.OccupancyPercent,
		})
	}
	return resp
}

// FromDomainSale конвертирует продажу в response
func FromDomainSale(s *domain.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:            s.ID,
		PaymentRef:    s.PaymentRef,
		PaymentMethod: string(s.PaymentMethod),
		AppointmentID: s.AppointmentID,
		ClientID:      s.ClientID,
		Subtotal:      domain.FormatMoney(s.Subtotal),
		Tax:           domain.FormatMoney(s.Tax),
		Total:         domain.FormatMoney(s.Total),
		Tips:          domain.FormatMoney(s.Tips),
		Discount:      domain.FormatMoney(s.Discount),
		Lines:         make([]SaleLineResponse, 0, len(s.Lines)),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
	for _, l := range s.Lines {
		resp.Lines = append(resp.Lines, SaleLineResponse{
			ServiceID:  l.ServiceID,
			Name:       l.Name,
			StaffID:    l.StaffID,
			StaffName:  l.StaffName,
			ClientName: l.ClientName,
			Price:      domain.FormatMoney(l.Price),
			Tip:        domain.FormatMoney(l.Tip),
		})
	}
	return resp
}
