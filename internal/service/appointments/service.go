package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись вместе с услугами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// Cancel отменяет запись с указанием причины
// "Client is a no show" переводит запись в статус no_show, остальные причины в cancelled.
// Запись остается в базе и перестает занимать слоты мастера.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d, reason=%q", id, req.Reason)

	status, reason, err := domain.ResolveCancellation(req.Reason, req.OtherReason)
	if err != nil {
		s.logger.Warn("Cancel: invalid reason for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidReason, err)
	}

	appointment, err := s.getAppointment(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
		return nil, ErrCannotCancel
	}

	cancelledAt := s.timeProvider.Now()
	if err := s.appointmentRepo.Cancel(ctx, id, status, reason, cancelledAt); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrStatusConflict):
			s.logger.Warn("Cancel: appointment id=%d changed status concurrently", id)
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	appointment.Status = status
	appointment.CancellationReason = &reason
	appointment.CancelledAt = &cancelledAt

	s.logger.Info("Cancel: successfully cancelled appointment id=%d with status=%s", id, status)
	return models.FromDomainAppointment(appointment), nil
}

// ListByClient возвращает историю записей клиента, включая отмененные
// Status, если задан, ограничивает выборку одним статусом.
func (s *Service) ListByClient(ctx context.Context, req *models.ClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByClient: fetching appointments for client id=%d", req.ClientID)

	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	filter := domain.AppointmentsFilter{
		ClientID:        &req.ClientID,
		IncludeInactive: true,
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("ListByClient: unknown status %q", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]*models.AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, models.FromDomainAppointment(a))
	}

	s.logger.Info("ListByClient: client id=%d has %d appointments", req.ClientID, len(list))
	return resp, nil
}

// IsSlotBooked проверяет, занят ли 15-минутный слот мастера
func (s *Service) IsSlotBooked(ctx context.Context, req *models.SlotCheckRequest) (*models.SlotCheckResponse, error) {
	s.logger.Info("IsSlotBooked: staff=%d, date=%s, time=%s", req.StaffID, req.Date.Format(domain.DateFormat), req.Time)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	date := req.Date
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StaffID:   &req.StaffID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		s.logger.Error("IsSlotBooked: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: IsSlotBooked - repository error: %v", ErrInternal, err)
	}

	booked := domain.IsSlotBooked(appointments, req.StaffID, req.Date, req.Time, req.ExcludeAppointmentID)

	return &models.SlotCheckResponse{
		StaffID: req.StaffID,
		Date:    req.Date.Format(domain.DateFormat),
		Time:    req.Time.String(),
		Booked:  booked,
	}, nil
}

// GetCheckout рассчитывает сумму к оплате: услуги, чаевые, налог 5% и итог
func (s *Service) GetCheckout(ctx context.Context, id int64) (*models.CheckoutResponse, error) {
	s.logger.Info("GetCheckout: calculating checkout for appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "GetCheckout", id)
	if err != nil {
		return nil, err
	}

	checkout, err := domain.CalculateCheckout(appointment.Services)
	if err != nil {
		s.logger.Error("GetCheckout: cannot price appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	s.logger.Info("GetCheckout: appointment id=%d total=%s", id, checkout.Total.StringFixed(2))
	return models.FromDomainCheckout(appointment, checkout), nil
}

func (s *Service) getAppointment(ctx context.Context, method string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", method, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return appointment, nil
}
