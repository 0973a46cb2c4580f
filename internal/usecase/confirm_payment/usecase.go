package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/asyncqueue"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
)

const mirrorJobName = "tablestore_mirror"

// UseCase use case подтверждения оплаты записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	saleRepo        SaleRepository
	mirror          SaleMirror
	txManager       TransactionManager
	jobs            JobDispatcher
	branchCode      string
	location        string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// branchCode - префикс номера чека, location - название филиала в журнале продаж.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	saleRepo SaleRepository,
	mirror SaleMirror,
	txManager TransactionManager,
	jobs JobDispatcher,
	branchCode string,
	location string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		saleRepo:        saleRepo,
		mirror:          mirror,
		txManager:       txManager,
		jobs:            jobs,
		branchCode:      branchCode,
		location:        location,
		logger:          logger,
	}
}

// Execute оплачивает запись
// В одной сериализуемой транзакции: номер чека, статус completed у записи и услуг,
// продажа со строками и строки журнала продаж. После коммита продажа копируется
// во внешнее хранилище в фоне.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: appointment=%d, method=%s", req.AppointmentID, req.PaymentMethod)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	var (
		appointment *domain.Appointment
		sale        *domain.Sale
	)

	// 2. Все изменения в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Запись (FOR UPDATE)
		a, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ConfirmPayment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ConfirmPayment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !a.CanBePaid() {
			uc.logger.Warn("ConfirmPayment: appointment id=%d cannot be paid, status=%s, services=%d",
				a.ID, a.Status, len(a.Services))
			return ErrCannotPay
		}

		// 2.2. Итоги
		checkout, err := domain.CalculateCheckout(a.Services)
		if err != nil {
			uc.logger.Error("ConfirmPayment: cannot price appointment id=%d: %v", a.ID, err)
			return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}

		// 2.3. Номер чека
		serial, err := uc.saleRepo.NextSerial(txCtx)
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to get next serial: %v", err)
			return fmt.Errorf("%w: failed to get next serial: %v", ErrInternal, err)
		}
		paymentRef := domain.FormatPaymentRef(uc.branchCode, serial)

		// 2.4. Запись и услуги - completed
		if err := uc.appointmentRepo.MarkCompleted(txCtx, a.ID, paymentRef); err != nil {
			if errors.Is(err, appointmentRepo.ErrStatusConflict) {
				return ErrCannotPay
			}
			uc.logger.Error("ConfirmPayment: failed to complete appointment id=%d: %v", a.ID, err)
			return fmt.Errorf("%w: failed to complete appointment: %v", ErrInternal, err)
		}

		// 2.5. Продажа
		created, err := uc.saleRepo.Create(txCtx, newSale(a, checkout, paymentRef, method))
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to create sale %s: %v", paymentRef, err)
			return fmt.Errorf("%w: failed to create sale: %v", ErrInternal, err)
		}

		// 2.6. Журнал продаж: строка на каждую услугу
		entries := make([]*domain.SalesLogEntry, 0, len(created.Lines))
		for i, line := range created.Lines {
			entries = append(entries, domain.NewSalesLogEntry(uc.location, created, line, a.Services[i].Category))
		}
		if err := uc.saleRepo.InsertSalesLog(txCtx, entries); err != nil {
			uc.logger.Error("ConfirmPayment: failed to write sales log for %s: %v", paymentRef, err)
			return fmt.Errorf("%w: failed to write sales log: %v", ErrInternal, err)
		}

		a.Status = domain.StatusCompleted
		a.PaymentRef = ptr.Ptr(paymentRef)
		for _, s := range a.Services {
			s.Completed = true
			s.PaymentRef = ptr.Ptr(paymentRef)
		}

		appointment = a
		sale = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: appointment id=%d paid, sale %s total=%s",
		appointment.ID, sale.PaymentRef, domain.FormatMoney(sale.Total))

	// 3. Копия во внешнее хранилище, ошибки только логируются
	uc.dispatchMirror(appointment, sale)

	return &Response{Appointment: appointment, Sale: sale}, nil
}

func newSale(a *domain.Appointment, checkout *domain.Checkout, paymentRef string, method domain.PaymentMethod) *domain.Sale {
	sale := &domain.Sale{
		PaymentRef:    paymentRef,
		PaymentMethod: method,
		AppointmentID: a.ID,
		ClientID:      a.ClientID,
		Subtotal:      checkout.Subtotal,
		Tax:           checkout.Tax,
		Total:         checkout.Total,
		Tips:          checkout.Tips,
		Discount:      decimal.Zero,
		Lines:         make([]*domain.SaleLine, 0, len(checkout.Lines)),
	}

	clientName := a.DisplayClientName()
	for i, line := range checkout.Lines {
		sale.Lines = append(sale.Lines, &domain.SaleLine{
			ServiceID:        line.ServiceID,
			CatalogServiceID: a.Services[i].CatalogServiceID,
			Name:             line.Name,
			StaffID:          line.StaffID,
			StaffName:        line.StaffName,
			ClientName:       clientName,
			Price:            line.Price,
			Tip:              line.Tip,
		})
	}
	return sale
}

func (uc *UseCase) dispatchMirror(appointment *domain.Appointment, sale *domain.Sale) {
	err := uc.jobs.Dispatch(asyncqueue.Job{
		Name: mirrorJobName,
		Run: func(ctx context.Context) error {
			return uc.mirror.MirrorSale(ctx, appointment, sale)
		},
	})
	if err != nil {
		uc.logger.Warn("ConfirmPayment: mirror of sale %s not queued: %v", sale.PaymentRef, err)
	}
}
