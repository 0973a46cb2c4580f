package clients

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
)

// SearchLimit максимальное количество клиентов в выдаче поиска
const SearchLimit = 50

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create создает клиента, имя и телефон обязательны
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	client, err := toDomainClient(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Create: creating client name=%q", client.Name)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%d", created.ID)
	resp := models.FromDomainClient(created)
	return &resp, nil
}

// Search ищет клиентов по имени или телефону
func (s *Service) Search(ctx context.Context, search string) (*models.ClientListResponse, error) {
	search = strings.TrimSpace(search)

	clients, err := s.clientRepo.Search(ctx, search, SearchLimit)
	if err != nil {
		s.logger.Error("Search: repository error for search=%q: %v", search, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: search=%q found %d clients", search, len(clients))
	return models.FromDomainClientList(clients), nil
}

func toDomainClient(req *models.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	client := &domain.Client{
		Name:     name,
		Phone:    phone,
		Pronouns: nonEmpty(req.Pronouns),
	}

	if email := nonEmpty(req.Email); email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		client.Email = email
	}

	if dob := nonEmpty(req.DateOfBirth); dob != nil {
		parsed, err := time.Parse(domain.DateFormat, *dob)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateOfBirth, expected YYYY-MM-DD", ErrInvalidInput)
		}
		client.DateOfBirth = &parsed
	}

	return client, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
