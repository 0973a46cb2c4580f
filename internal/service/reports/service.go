package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	saleRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/sale"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

// Service сервис отчетов: журнал продаж, чаевые, показатели мастеров
type Service struct {
	saleRepo        SaleRepository
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	saleRepo SaleRepository,
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		saleRepo:        saleRepo,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		logger:          logger,
	}
}

// SalesLog возвращает журнал продаж, новые строки сначала
func (s *Service) SalesLog(ctx context.Context, req *models.SalesLogRequest) (*models.SalesLogResponse, error) {
	entries, err := s.listSalesLog(ctx, "SalesLog", req)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSalesLog(entries), nil
}

// ExportSalesLogXLSX выгружает журнал продаж в XLSX
func (s *Service) ExportSalesLogXLSX(ctx context.Context, req *models.SalesLogRequest) ([]byte, error) {
	entries, err := s.listSalesLog(ctx, "ExportSalesLogXLSX", req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteSalesLogXLSX(&buf, entries); err != nil {
		s.logger.Error("ExportSalesLogXLSX: %v", err)
		return nil, err
	}

	s.logger.Info("ExportSalesLogXLSX: exported %d rows", len(entries))
	return buf.Bytes(), nil
}

// TipsSummary сводка по чаевым мастеров
func (s *Service) TipsSummary(ctx context.Context, req *models.TipsRequest) (*models.TipsSummaryResponse, error) {
	summary, err := s.summarizeTips(ctx, "TipsSummary", req)
	if err != nil {
		return nil, err
	}
	return models.FromDomainTipsSummary(summary), nil
}

// ExportTipsCSV выгружает сводку по чаевым в CSV
func (s *Service) ExportTipsCSV(ctx context.Context, req *models.TipsRequest) ([]byte, error) {
	summary, err := s.summarizeTips(ctx, "ExportTipsCSV", req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteTipsCSV(&buf, summary); err != nil {
		s.logger.Error("ExportTipsCSV: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// TipDetails детализация чаевых одного мастера
func (s *Service) TipDetails(ctx context.Context, member string, req *models.TipsRequest) (*models.TipDetailsResponse, error) {
	member = strings.TrimSpace(member)
	if member == "" {
		return nil, fmt.Errorf("%w: team member is required", ErrInvalidInput)
	}
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}

	entries, err := s.saleRepo.ListSalesLog(ctx, domain.SalesLogFilter{TeamMember: member, From: req.From, To: req.To})
	if err != nil {
		s.logger.Error("TipDetails: repository error for member=%q: %v", member, err)
		return nil, fmt.Errorf("%w: TipDetails - repository error: %v", ErrInternal, err)
	}

	details := domain.TipsForMember(entries, member, domain.TipsFilter{From: req.From, To: req.To})
	s.logger.Info("TipDetails: member=%q has %d tipped services", member, len(details.Entries))
	return models.FromDomainTipDetails(details), nil
}

// TeamPerformance показатели мастеров за период
func (s *Service) TeamPerformance(ctx context.Context, req *models.TeamPerformanceRequest) (*models.TeamPerformanceResponse, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if err := validatePeriod(&req.From, &req.To); err != nil {
		return nil, err
	}

	s.logger.Info("TeamPerformance: period %s - %s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("TeamPerformance: staff repository error: %v", err)
		return nil, fmt.Errorf("%w: TeamPerformance - staff: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{StartDate: &req.From, EndDate: &req.To})
	if err != nil {
		s.logger.Error("TeamPerformance: appointment repository error: %v", err)
		return nil, fmt.Errorf("%w: TeamPerformance - appointments: %v", ErrInternal, err)
	}

	entries, err := s.saleRepo.ListSalesLog(ctx, domain.SalesLogFilter{From: &req.From, To: &req.To})
	if err != nil {
		s.logger.Error("TeamPerformance: sales log repository error: %v", err)
		return nil, fmt.Errorf("%w: TeamPerformance - sales log: %v", ErrInternal, err)
	}

	perf := domain.ComputeTeamPerformance(staff, appointments, entries, req.From, req.To)
	return models.FromDomainTeamPerformance(req.From, req.To, perf), nil
}

// GetSale получает продажу по номеру чека
func (s *Service) GetSale(ctx context.Context, paymentRef string) (*models.SaleResponse, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, fmt.Errorf("%w: payment reference is required", ErrInvalidInput)
	}

	sale, err := s.saleRepo.GetByPaymentRef(ctx, paymentRef)
	if err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			s.logger.Warn("GetSale: sale %s not found", paymentRef)
			return nil, ErrSaleNotFound
		}
		s.logger.Error("GetSale: repository error for sale %s: %v", paymentRef, err)
		return nil, fmt.Errorf("%w: GetSale - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSale(sale), nil
}

func (s *Service) listSalesLog(ctx context.Context, method string, req *models.SalesLogRequest) ([]*domain.SalesLogEntry, error) {
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}

	filter := domain.SalesLogFilter{
		Search: strings.TrimSpace(req.Search),
		From:   req.From,
		To:     req.To,
		Limit:  domain.DefaultSalesLogSearchLimit,
	}

	entries, err := s.saleRepo.ListSalesLog(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	s.logger.Info("%s: search=%q returned %d rows", method, filter.Search, len(entries))
	return entries, nil
}

func (s *Service) summarizeTips(ctx context.Context, method string, req *models.TipsRequest) (*domain.TipsSummary, error) {
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}

	member := strings.TrimSpace(req.TeamMember)
	entries, err := s.saleRepo.ListSalesLog(ctx, domain.SalesLogFilter{TeamMember: member, From: req.From, To: req.To})
	if err != nil {
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return domain.SummarizeTips(entries, domain.TipsFilter{TeamMember: member, From: req.From, To: req.To}), nil
}
