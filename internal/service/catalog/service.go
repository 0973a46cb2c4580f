package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/catalog/models"
)

// Service сервис справочников: меню услуг и мастера
type Service struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(serviceRepo ServiceRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// ListServices возвращает меню услуг, опционально фильтруя по названию
func (s *Service) ListServices(ctx context.Context, search string) (*models.ServiceListResponse, error) {
	search = strings.TrimSpace(search)
	s.logger.Info("ListServices: search=%q", search)

	services, err := s.serviceRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: found %d services", len(services))
	return models.FromDomainServices(services), nil
}

// ListStaff возвращает активных мастеров в порядке колонок календаря
func (s *Service) ListStaff(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(staff), nil
}
