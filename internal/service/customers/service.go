package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customerRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/customer"
	"github.com/turfhq/turf-admin-service/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer %q by user=%d", req.Name, req.UserID)

	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	customer, err := s.customerRepo.Create(ctx, req.ToDomainCustomer())
	if err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already exists", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", customer.ID)
	return models.FromDomainCustomer(customer), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched customer id=%d", id)
	return models.FromDomainCustomer(customer), nil
}

// List получает список клиентов с опциональным поиском по имени или email
func (s *Service) List(ctx context.Context, search *string) (*models.CustomerListResponse, error) {
	if search != nil && *search != "" {
		s.logger.Info("List: fetching customers, search=%q", *search)
	} else {
		s.logger.Info("List: fetching all customers")
	}

	customers, err := s.customerRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// validateCreateRequest проверяет корректность запроса на создание клиента
func (s *Service) validateCreateRequest(req *models.CreateCustomerRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}
