package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TipsFilter фильтр отчета по чаевым
type TipsFilter struct {
	TeamMember string
	From       *time.Time
	To         *time.Time
}

// Includes проверяет, попадает ли строка журнала под фильтр
func (f TipsFilter) Includes(e *SalesLogEntry) bool {
	if f.TeamMember != "" && e.TeamMember != f.TeamMember {
		return false
	}
	if f.From != nil && e.SaleDate.Before(truncateDay(*f.From)) {
		return false
	}
	if f.To != nil && !e.SaleDate.Before(truncateDay(*f.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// TipsRow чаевые одного мастера
type TipsRow struct {
	TeamMember string
	Collected  decimal.Decimal
	Refunded   decimal.Decimal
	Total      decimal.Decimal
}

// TipsSummary сводка по чаевым
type TipsSummary struct {
	Rows  []TipsRow
	Total TipsRow
}

// SummarizeTips агрегирует чаевые по мастерам
// Учитываются строки с чаевыми > 0 и непустым мастером, строки сортируются по имени мастера.
func SummarizeTips(entries []*SalesLogEntry, filter TipsFilter) *TipsSummary {
	byMember := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if !filter.Includes(e) || !e.Tip.IsPositive() || strings.TrimSpace(e.TeamMember) == "" {
			continue
		}
		byMember[e.TeamMember] = byMember[e.TeamMember].Add(e.Tip)
	}

	summary := &TipsSummary{
		Rows:  make([]TipsRow, 0, len(byMember)),
		Total: TipsRow{TeamMember: "Total", Collected: decimal.Zero, Refunded: decimal.Zero, Total: decimal.Zero},
	}
	for member, collected := range byMember {
		summary.Rows = append(summary.Rows, TipsRow{
			TeamMember: member,
			Collected:  collected,
			Refunded:   decimal.Zero,
			Total:      collected,
		})
		summary.Total.Collected = summary.Total.Collected.Add(collected)
	}
	summary.Total.Total = summary.Total.Collected

	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].TeamMember < summary.Rows[j].TeamMember
	})
	return summary
}

// TipDetail строка детализации чаевых мастера
type TipDetail struct {
	Date       time.Time
	Item       string
	Client     string
	Tip        decimal.Decimal
	PaymentRef string
}

// TipDetails детализация чаевых одного мастера
type TipDetails struct {
	TeamMember string
	Entries    []TipDetail
	Total      decimal.Decimal
}

// TipsForMember возвращает строки с чаевыми мастера в хронологическом порядке
func TipsForMember(entries []*SalesLogEntry, member string, filter TipsFilter) *TipDetails {
	filter.TeamMember = member
	details := &TipDetails{TeamMember: member, Entries: make([]TipDetail, 0), Total: decimal.Zero}

	for _, e := range entries {
		if !filter.Includes(e) || !e.Tip.IsPositive() {
			continue
		}
		details.Entries = append(details.Entries, TipDetail{
			Date:       e.SaleDate,
			Item:       e.Item,
			Client:     e.Client,
			Tip:        e.Tip,
			PaymentRef: e.PaymentRef,
		})
		details.Total = details.Total.Add(e.Tip)
	}

	sort.SliceStable(details.Entries, func(i, j int) bool {
		return details.Entries[i].Date.Before(details.Entries[j].Date)
	})
	return details
}

// TeamPerformance показатели мастера за период
type TeamPerformance struct {
	StaffID           int64
	TeamMember        string
	Sales             decimal.Decimal
	TotalBookings     int
	CompletedBookings int
	Clients           int
	ReturningPercent  float64
	BookedHours       float64
	ScheduledHours    float64
	OccupancyPercent  float64
}

// ComputeTeamPerformance считает показатели мастеров за период [from, to]
// Запись учитывается у мастера, если он выполнял в ней хотя бы одну услугу.
func ComputeTeamPerformance(staff []*Staff, appointments []*Appointment, entries []*SalesLogEntry, from, to time.Time) []TeamPerformance {
	scheduled := float64(DaysInclusive(from, to) * ScheduledHoursPerDay)

	salesByMember := make(map[string]decimal.Decimal)
	for _, e := range entries {
		salesByMember[e.TeamMember] = salesByMember[e.TeamMember].Add(e.TotalSales)
	}

	result := make([]TeamPerformance, 0, len(staff))
	for _, s := range staff {
		perf := TeamPerformance{
			StaffID:        s.ID,
			TeamMember:     s.Name,
			Sales:          salesByMember[s.Name],
			ScheduledHours: scheduled,
		}

		visits := make(map[int64]int)
		bookedMinutes := 0
		for _, a := range appointments {
			if !a.IsActive() {
				continue
			}
			performed := false
			for _, svc := range a.Services {
				if svc.StaffID != s.ID {
					continue
				}
				performed = true
				bookedMinutes += svc.DurationMinutes()
			}
			if !performed {
				continue
			}

			perf.TotalBookings++
			if a.Status == StatusCompleted {
				perf.CompletedBookings++
			}
			if a.ClientID != nil {
				visits[*a.ClientID]++
			}
		}

		perf.Clients = len(visits)
		if perf.Clients > 0 {
			returning := 0
			for _, n := range visits {
				if n > 1 {
					returning++
				}
			}
			perf.ReturningPercent = roundTo(float64(returning)/float64(perf.Clients)*100, 1)
		}

		perf.BookedHours = roundTo(float64(bookedMinutes)/60, 1)
		if scheduled > 0 {
			perf.OccupancyPercent = roundTo(perf.BookedHours/scheduled*100, 1)
		}

		result = append(result, perf)
	}

	return result
}

func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
