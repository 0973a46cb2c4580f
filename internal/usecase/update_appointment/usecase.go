package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonCalendar/pkg/slotlock"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// UseCase use case для изменения записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	staffRepo       StaffRepository
	locker          Locker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	staffRepo StaffRepository,
	locker Locker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		staffRepo:       staffRepo,
		locker:          locker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case изменения записи
// Занятость проверяется без учета самой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, staff=%d, date=%s, time=%s, services=%d",
		req.AppointmentID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Клиент
	var clientName string
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("UpdateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		clientName = client.Name
	}

	// 3. Новый список услуг
	services, end, err := uc.buildServices(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Блокируем всех мастеров новых услуг на день
	keys := slotlock.StaffDayKeys(domain.ServiceStaffIDs(services), req.Date)
	var result *domain.Appointment
	err = slotlock.WithLocks(ctx, uc.locker, keys, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 4.1. Текущая запись (FOR UPDATE)
			appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
			if err != nil {
				if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
					uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
					return ErrAppointmentNotFound
				}
				uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
				return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
			}

			if !appointment.CanBeEdited() {
				uc.logger.Warn("UpdateAppointment: appointment id=%d cannot be edited, status=%s", appointment.ID, appointment.Status)
				return ErrCannotEdit
			}

			// 4.2. Переданные обратно услуги сохраняют свои ID
			for i, s := range req.Services {
				if s.ID == nil {
					continue
				}
				if appointment.FindService(*s.ID) == nil {
					uc.logger.Warn("UpdateAppointment: service %s does not belong to appointment id=%d", *s.ID, appointment.ID)
					return fmt.Errorf("%w: services[%d]: unknown service id %s", ErrInvalidInput, i, *s.ID)
				}
				services[i].ID = *s.ID
			}

			// 4.3. Проверяем слоты каждой услуги у ее мастера без учета самой записи
			existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StartDate: &req.Date,
				EndDate:   &req.Date,
			})
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			conflict, err := domain.FindConflict(existing, req.Date, services, &appointment.ID)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
			}
			if conflict != nil {
				uc.logger.Warn("UpdateAppointment: slot %s of staff=%d is already booked", conflict.Slot, conflict.StaffID)
				return fmt.Errorf("%w: %s is already booked for staff %d", ErrSlotNotAvailable, conflict.Slot, conflict.StaffID)
			}

			// 4.4. Сохраняем
			appointment.ClientID = req.ClientID
			appointment.ClientName = clientName
			appointment.StaffID = req.StaffID
			appointment.Date = req.Date
			appointment.StartTime = req.StartTime
			appointment.EndTime = end
			appointment.Notes = req.Notes
			appointment.Services = services

			if err := uc.appointmentRepo.Update(txCtx, appointment); err != nil {
				if errors.Is(err, appointmentRepo.ErrStatusConflict) {
					return ErrCannotEdit
				}
				uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", appointment.ID, err)
				return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
			}

			result = appointment
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, slotlock.ErrLockNotAcquired) {
			uc.logger.Warn("UpdateAppointment: schedule is locked (%v)", keys)
			return nil, ErrScheduleLocked
		}
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d (%s-%s)",
		result.ID, result.StartTime, result.EndTime)
	return &Response{Appointment: result}, nil
}

// buildServices собирает услуги из меню и раскладывает их последовательно от начала записи
func (uc *UseCase) buildServices(ctx context.Context, req *Request) ([]*domain.AppointmentService, types.TimeString, error) {
	staffList, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to list staff: %v", err)
		return nil, "", fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	staffByID := make(map[int64]*domain.Staff, len(staffList))
	for _, s := range staffList {
		staffByID[s.ID] = s
	}
	if _, ok := staffByID[req.StaffID]; !ok {
		return nil, "", ErrStaffNotFound
	}

	catalog, err := uc.catalogRepo.GetByIDs(ctx, catalogIDs(req.Services))
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get services: %v", err)
		return nil, "", fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services := make([]*domain.AppointmentService, 0, len(req.Services))
	for _, s := range req.Services {
		item, ok := catalog[s.CatalogServiceID]
		if !ok {
			return nil, "", fmt.Errorf("%w: id=%d", ErrServiceNotFound, s.CatalogServiceID)
		}

		staffID := req.StaffID
		if s.StaffID != nil {
			staffID = *s.StaffID
		}
		staff, ok := staffByID[staffID]
		if !ok {
			return nil, "", ErrStaffNotFound
		}

		services = append(services, domain.NewAppointmentService(item, staff, s.Tip))
	}

	end, err := domain.ScheduleServices(req.StartTime, services)
	if err != nil {
		return nil, "", fmt.Errorf("%w: appointment ends after midnight", ErrInvalidTimeSlot)
	}
	if !end.IsAfter(req.StartTime) {
		return nil, "", fmt.Errorf("%w: services have no duration", ErrInvalidInput)
	}

	return services, end, nil
}
