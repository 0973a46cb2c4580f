package move_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	staffRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonCalendar/pkg/slotlock"
)

// UseCase use case переноса услуги перетаскиванием в календаре
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	locker          Locker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	locker Locker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		locker:          locker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute переносит услугу к мастеру StaffID на время StartTime
// Остальные услуги записи не двигаются и занимают время своих мастеров.
// Мастер, начало и конец записи пересчитываются по услугам и служат только сводкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveService: appointment=%d, service=%s -> staff=%d, time=%s",
		req.AppointmentID, req.ServiceID, req.StaffID, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveService: validation failed: %v", err)
		return nil, err
	}

	// 2. Целевой мастер
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("MoveService: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("MoveService: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Дата записи нужна для ключа блокировки
	appointment, err := uc.getAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment
	err = uc.locker.WithLock(ctx, slotlock.StaffDayKey(req.StaffID, appointment.Date), func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 4.1. Перечитываем запись под блокировкой (FOR UPDATE)
			appointment, err := uc.getAppointment(txCtx, req.AppointmentID)
			if err != nil {
				return err
			}
			if !appointment.CanBeEdited() {
				uc.logger.Warn("MoveService: appointment id=%d cannot be changed, status=%s", appointment.ID, appointment.Status)
				return ErrCannotMove
			}

			service := appointment.FindService(req.ServiceID)
			if service == nil {
				uc.logger.Warn("MoveService: service %s not found in appointment id=%d", req.ServiceID, appointment.ID)
				return ErrServiceNotFound
			}

			moved := *service
			moved.StaffID = staff.ID
			moved.StaffName = staff.Name
			moved.StartTime = req.StartTime
			if _, err := moved.EndTime(); err != nil {
				return fmt.Errorf("%w: service ends after midnight", ErrInvalidTimeSlot)
			}

			// 4.2. Интервал услуги должен быть свободен у целевого мастера.
			// Не учитывается только сама переносимая услуга, остальные услуги записи занимают время.
			existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StaffID:   &req.StaffID,
				StartDate: &appointment.Date,
				EndDate:   &appointment.Date,
			})
			if err != nil {
				uc.logger.Error("MoveService: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			conflict, err := domain.FindMoveConflict(existing, appointment.Date, appointment.ID, &moved)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
			}
			if conflict != nil {
				uc.logger.Warn("MoveService: slot %s of staff=%d is already booked", conflict.Slot, conflict.StaffID)
				return fmt.Errorf("%w: %s is already booked", ErrSlotNotAvailable, conflict.Slot)
			}

			// 4.3. Меняем только мастера и время услуги
			*service = moved

			if err := appointment.RecalculateBounds(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
			}

			if err := uc.appointmentRepo.Update(txCtx, appointment); err != nil {
				if errors.Is(err, appointmentRepo.ErrStatusConflict) {
					return ErrCannotMove
				}
				uc.logger.Error("MoveService: failed to update appointment id=%d: %v", appointment.ID, err)
				return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
			}

			result = appointment
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, slotlock.ErrLockNotAcquired) {
			uc.logger.Warn("MoveService: schedule of staff=%d is locked", req.StaffID)
			return nil, ErrScheduleLocked
		}
		return nil, err
	}

	uc.logger.Info("MoveService: appointment id=%d now staff=%d %s-%s",
		result.ID, result.StaffID, result.StartTime, result.EndTime)
	return &Response{Appointment: result}, nil
}

func (uc *UseCase) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("MoveService: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("MoveService: failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	return appointment, nil
}
