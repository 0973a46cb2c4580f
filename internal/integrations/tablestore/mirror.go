package tablestore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Inserter вставка строки в удаленную таблицу
type Inserter interface {
	Insert(ctx context.Context, table string, row interface{}) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mirror дублирует оплаченные записи в удаленное хранилище
// Вставки идут по порядку, первая ошибка прерывает зеркалирование.
// Повторов нет: локальные данные уже зафиксированы.
type Mirror struct {
	inserter Inserter
	log      Logger
}

// NewMirror создает зеркалирование поверх inserter
func NewMirror(inserter Inserter, log Logger) *Mirror {
	return &Mirror{inserter: inserter, log: log}
}

// MirrorSale вставляет запись, ее услуги, продажу и строки продажи
func (m *Mirror) MirrorSale(ctx context.Context, appointment *domain.Appointment, sale *domain.Sale) error {
	remoteAppointmentID, err := m.inserter.Insert(ctx, TableAppointments, AppointmentRow{
		ClientID:  appointment.ClientID,
		Date:      appointment.Date.Format(domain.DateFormat),
		Status:    statusCompleted,
		Notes:     appointment.Notes,
		InvoiceID: sale.PaymentRef,
		CreatedAt: sale.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("mirror appointment %d: %w", appointment.ID, err)
	}

	prices := make(map[string]decimal.Decimal, len(sale.Lines))
	for _, line := range sale.Lines {
		prices[line.ServiceID] = line.Price
	}

	for _, s := range appointment.Services {
		_, err := m.inserter.Insert(ctx, TableAppointmentServices, AppointmentServiceRow{
			AppointmentID: remoteAppointmentID,
			ServiceID:     s.CatalogServiceID,
			TeamMemberID:  s.StaffID,
			StartTime:     s.StartTime.String(),
			Tip:           s.Tip,
			Price:         prices[s.ID],
			Discount:      decimal.Zero,
			Status:        statusCompleted,
		})
		if err != nil {
			return fmt.Errorf("mirror appointment service %s: %w", s.ID, err)
		}
	}

	remoteSaleID, err := m.inserter.Insert(ctx, TableSales, SaleRow{
		InvoiceID:     sale.PaymentRef,
		AppointmentID: remoteAppointmentID,
		ClientID:      sale.ClientID,
		PaymentType:   string(sale.PaymentMethod),
		Total:         sale.Total,
		Tax:           sale.Tax,
		Discount:      decimal.Zero,
		Tip:           sale.Tips,
		CreatedAt:     sale.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("mirror sale %s: %w", sale.PaymentRef, err)
	}

	for _, line := range sale.Lines {
		_, err := m.inserter.Insert(ctx, TableSalesServices, SaleServiceRow{
			SaleID:       remoteSaleID,
			ServiceID:    line.CatalogServiceID,
			TeamMemberID: line.StaffID,
			Tip:          line.Tip,
			Price:        line.Price,
			Discount:     decimal.Zero,
		})
		if err != nil {
			return fmt.Errorf("mirror sale line %s: %w", line.ServiceID, err)
		}
	}

	m.log.Info("tablestore: mirrored sale %s (remote appointment=%d, sale=%d)",
		sale.PaymentRef, remoteAppointmentID, remoteSaleID)
	return nil
}

// NoopMirror используется, когда удаленное хранилище отключено
type NoopMirror struct{}

// MirrorSale ничего не делает
func (NoopMirror) MirrorSale(context.Context, *domain.Appointment, *domain.Sale) error {
	return nil
}
