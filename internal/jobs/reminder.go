package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/integrations/sms"
)

// AppointmentLister выборка записей
type AppointmentLister interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientGetter получение клиента
type ClientGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// SMSSender отправка SMS
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Reminder рассылает напоминания клиентам о записях на завтра
type Reminder struct {
	appointments AppointmentLister
	clients      ClientGetter
	sender       SMSSender
	salonName    string
	timeProvider TimeProvider
	logger       Logger
}

// NewReminder создает задачу напоминаний
func NewReminder(
	appointments AppointmentLister,
	clients ClientGetter,
	sender SMSSender,
	salonName string,
	timeProvider TimeProvider,
	logger Logger,
) *Reminder {
	return &Reminder{
		appointments: appointments,
		clients:      clients,
		sender:       sender,
		salonName:    salonName,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *Reminder) Name() string {
	return "appointment_reminder"
}

// Run отправляет по одному SMS на каждую забронированную запись завтрашнего дня
// Walk-in и клиенты без телефона пропускаются. Ошибка отправки одному клиенту не прерывает рассылку.
func (r *Reminder) Run(ctx context.Context) error {
	now := r.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	status := domain.StatusBooked

	appointments, err := r.appointments.List(ctx, domain.AppointmentsFilter{
		StartDate: &tomorrow,
		EndDate:   &tomorrow,
		Status:    &status,
	})
	if err != nil {
		return fmt.Errorf("list appointments for %s: %w", tomorrow.Format(domain.DateFormat), err)
	}

	sent, failed := 0, 0
	for _, a := range appointments {
		if a.IsWalkIn() {
			continue
		}

		client, err := r.clients.GetByID(ctx, *a.ClientID)
		if err != nil {
			r.logger.Warn("Reminder: client id=%d of appointment id=%d: %v", *a.ClientID, a.ID, err)
			failed++
			continue
		}
		if client.Phone == "" {
			continue
		}

		body := sms.ReminderText(r.salonName, client.Name, a.Date, a.StartTime)
		if err := r.sender.Send(ctx, client.Phone, body); err != nil {
			r.logger.Warn("Reminder: appointment id=%d: %v", a.ID, err)
			failed++
			continue
		}
		sent++
	}

	r.logger.Info("Reminder: %s: %d sent, %d failed of %d appointments",
		tomorrow.Format(domain.DateFormat), sent, failed, len(appointments))
	return nil
}
