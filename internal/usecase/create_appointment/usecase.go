package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonCalendar/internal/integrations/sms"
	"github.com/m04kA/SMC-SalonCalendar/pkg/asyncqueue"
	"github.com/m04kA/SMC-SalonCalendar/pkg/slotlock"
)

const confirmationJobName = "sms_confirmation"

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	staffRepo       StaffRepository
	locker          Locker
	txManager       TransactionManager
	jobs            JobDispatcher
	smsSender       SMSSender
	salonName       string
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
	jobs JobDispatcher,
	smsSender SMSSender,
	salonName string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		staffRepo:       staffRepo,
		locker:          locker,
		txManager:       txManager,
		jobs:            jobs,
		smsSender:       smsSender,
		salonName:       salonName,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости и вставка выполняются под блокировкой расписания мастера
// в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: staff=%d, date=%s, time=%s, services=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Клиент (walk-in, если не указан)
	var client *domain.Client
	if req.ClientID != nil {
		c, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		client = c
	}

	// 3. Собираем услуги из меню
	appointment, err := uc.buildAppointment(ctx, req, client)
	if err != nil {
		return nil, err
	}

	// 4. Под блокировкой всех мастеров услуг на день проверяем слоты и сохраняем запись
	keys := slotlock.StaffDayKeys(domain.ServiceStaffIDs(appointment.Services), req.Date)
	var result *domain.Appointment
	err = slotlock.WithLocks(ctx, uc.locker, keys, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 4.1. Активные записи на эту дату (FOR UPDATE)
			existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StartDate: &req.Date,
				EndDate:   &req.Date,
			})
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			// 4.2. Каждый 15-минутный слот каждой услуги должен быть свободен у ее мастера
			conflict, err := domain.FindConflict(existing, req.Date, appointment.Services, nil)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
			}
			if conflict != nil {
				uc.logger.Warn("CreateAppointment: slot %s of staff=%d is already booked", conflict.Slot, conflict.StaffID)
				return fmt.Errorf("%w: %s is already booked for staff %d", ErrSlotNotAvailable, conflict.Slot, conflict.StaffID)
			}

			// 4.3. Сохраняем запись вместе с услугами
			created, err := uc.appointmentRepo.Create(txCtx, appointment)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, slotlock.ErrLockNotAcquired) {
			uc.logger.Warn("CreateAppointment: schedule is locked (%v)", keys)
			return nil, ErrScheduleLocked
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (%s-%s)",
		result.ID, result.StartTime, result.EndTime)

	// 5. Подтверждение клиенту по SMS (после коммита, в фоне)
	if client != nil && client.Phone != "" {
		uc.notify(result, client)
	}

	return &Response{Appointment: result}, nil
}

// buildAppointment собирает запись: услуги копируются из меню,
// время начала услуг накапливается от слота записи
func (uc *UseCase) buildAppointment(ctx context.Context, req *Request, client *domain.Client) (*domain.Appointment, error) {
	staffList, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	staffByID := make(map[int64]*domain.Staff, len(staffList))
	for _, s := range staffList {
		staffByID[s.ID] = s
	}

	if _, ok := staffByID[req.StaffID]; !ok {
		uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
		return nil, ErrStaffNotFound
	}

	catalog, err := uc.catalogRepo.GetByIDs(ctx, catalogIDs(req.Services))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services := make([]*domain.AppointmentService, 0, len(req.Services))
	for _, s := range req.Services {
		item, ok := catalog[s.CatalogServiceID]
		if !ok {
			uc.logger.Warn("CreateAppointment: service id=%d not found", s.CatalogServiceID)
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, s.CatalogServiceID)
		}

		staffID := req.StaffID
		if s.StaffID != nil {
			staffID = *s.StaffID
		}
		staff, ok := staffByID[staffID]
		if !ok {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}

		services = append(services, domain.NewAppointmentService(item, staff, s.Tip))
	}

	end, err := domain.ScheduleServices(req.StartTime, services)
	if err != nil {
		uc.logger.Warn("CreateAppointment: services do not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: appointment ends after midnight", ErrInvalidTimeSlot)
	}
	if !end.IsAfter(req.StartTime) {
		return nil, fmt.Errorf("%w: services have no duration", ErrInvalidInput)
	}

	appointment := &domain.Appointment{
		ClientID:  req.ClientID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   end,
		Notes:     req.Notes,
		Status:    domain.StatusBooked,
		Services:  services,
	}
	if client != nil {
		appointment.ClientName = client.Name
	}

	return appointment, nil
}

func (uc *UseCase) notify(appointment *domain.Appointment, client *domain.Client) {
	body := sms.ConfirmationText(uc.salonName, client.Name, appointment.Date, appointment.StartTime)
	phone := client.Phone

	err := uc.jobs.Dispatch(asyncqueue.Job{
		Name: confirmationJobName,
		Run: func(ctx context.Context) error {
			return uc.smsSender.Send(ctx, phone, body)
		},
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: confirmation for appointment id=%d not queued: %v", appointment.ID, err)
	}
}
