package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfhq/turf-admin-service/internal/domain"
	ruleRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/pricing"
	fieldClient "github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
	"github.com/turfhq/turf-admin-service/internal/service/pricing/models"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// Service сервис для работы с правилами ценообразования
type Service struct {
	ruleRepo    RuleRepository
	fieldClient FieldServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса ценообразования
func NewService(
	ruleRepo RuleRepository,
	fieldClient FieldServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		fieldClient: fieldClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListRules получает правила ценообразования площадки
// Публичный метод - превью цен на дашборде работает поверх него
func (s *Service) ListRules(ctx context.Context, fieldID string, onlyActive bool) (*models.RuleListResponse, error) {
	s.logger.Info("ListRules: fetching rules for field=%s, onlyActive=%t", fieldID, onlyActive)

	rules, err := s.ruleRepo.ListByField(ctx, fieldID, onlyActive)
	if err != nil {
		s.logger.Error("ListRules: repository error for field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRules: successfully fetched %d rules for field=%s", len(rules), fieldID)
	return models.FromDomainRuleList(rules), nil
}

// CreateRule создает новое правило ценообразования
// Проверяет существование площадки через FieldService
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: creating rule %q for field=%s by user=%d", req.Name, req.FieldID, req.UserID)

	rule, err := req.ToDomainRule()
	if err != nil {
		s.logger.Warn("CreateRule: invalid request for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateRule(rule); err != nil {
		s.logger.Warn("CreateRule: validation failed for field=%s: %v", req.FieldID, err)
		return nil, err
	}

	if err := s.checkFieldExists(ctx, req.FieldID); err != nil {
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("CreateRule: repository error for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: successfully created rule id=%d for field=%s", created.ID, req.FieldID)
	return models.FromDomainRule(created), nil
}

// UpdateRule частично обновляет правило ценообразования
// nil-поля запроса не меняют текущие значения
func (s *Service) UpdateRule(ctx context.Context, fieldID string, ruleID int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpdateRule: updating rule id=%d for field=%s by user=%d", ruleID, fieldID, req.UserID)

	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: rule id=%d not found", ruleID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%d: %v", ruleID, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	// Правило должно принадлежать площадке из URL
	if rule.FieldID != fieldID {
		s.logger.Warn("UpdateRule: rule id=%d belongs to field=%s, not field=%s", ruleID, rule.FieldID, fieldID)
		return nil, ErrRuleNotFound
	}

	if err := s.applyRuleUpdates(rule, req); err != nil {
		s.logger.Warn("UpdateRule: invalid update for rule id=%d: %v", ruleID, err)
		return nil, err
	}

	if err := s.validateRule(rule); err != nil {
		s.logger.Warn("UpdateRule: validation failed for rule id=%d: %v", ruleID, err)
		return nil, err
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: rule id=%d not found during update", ruleID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%d: %v", ruleID, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRule: successfully updated rule id=%d for field=%s", ruleID, fieldID)
	return models.FromDomainRule(rule), nil
}

// DeleteRule удаляет правило ценообразования площадки
func (s *Service) DeleteRule(ctx context.Context, fieldID string, ruleID int64, userID int64) error {
	s.logger.Info("DeleteRule: deleting rule id=%d for field=%s by user=%d", ruleID, fieldID, userID)

	if err := s.ruleRepo.Delete(ctx, fieldID, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%d not found for field=%s", ruleID, fieldID)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%d: %v", ruleID, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: successfully deleted rule id=%d for field=%s", ruleID, fieldID)
	return nil
}

// ApplyTemplate заменяет правила площадки набором правил шаблона
// Удаление старых правил и создание новых выполняются в одной транзакции
func (s *Service) ApplyTemplate(ctx context.Context, req *models.ApplyTemplateRequest) (*models.ApplyTemplateResponse, error) {
	s.logger.Info("ApplyTemplate: applying template=%s to field=%s by user=%d", req.Template, req.FieldID, req.UserID)

	rules, ok := templateRules(req.Template, req.FieldID)
	if !ok {
		s.logger.Warn("ApplyTemplate: unknown template=%s", req.Template)
		return nil, ErrTemplateNotFound
	}

	if err := s.checkFieldExists(ctx, req.FieldID); err != nil {
		return nil, err
	}

	var removed int64
	created := make([]*models.RuleResponse, 0, len(rules))

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.ruleRepo.DeleteByField(ctx, req.FieldID)
		if err != nil {
			return fmt.Errorf("delete existing rules: %w", err)
		}
		removed = count

		for _, rule := range rules {
			createdRule, err := s.ruleRepo.Create(ctx, rule)
			if err != nil {
				return fmt.Errorf("create template rule %q: %w", rule.Name, err)
			}
			created = append(created, models.FromDomainRule(createdRule))
		}

		return nil
	})

	if err != nil {
		s.logger.Error("ApplyTemplate: transaction failed for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: ApplyTemplate - transaction error: %v", ErrInternal, err)
	}

	resp := &models.ApplyTemplateResponse{
		Template:     req.Template,
		RemovedRules: removed,
		CreatedRules: make([]models.RuleResponse, 0, len(created)),
	}
	for _, rule := range created {
		resp.CreatedRules = append(resp.CreatedRules, *rule)
	}

	s.logger.Info("ApplyTemplate: template=%s applied to field=%s, removed=%d, created=%d",
		req.Template, req.FieldID, removed, len(created))
	return resp, nil
}

// Вспомогательные методы

// applyRuleUpdates накладывает непустые поля запроса на правило
func (s *Service) applyRuleUpdates(rule *domain.PricingRule, req *models.UpdateRuleRequest) error {
	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Type != nil {
		ruleType, err := models.ToDomainRuleType(*req.Type)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rule.Type = ruleType
	}
	if req.Multiplier != nil {
		rule.Multiplier = *req.Multiplier
	}
	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
		rule.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: invalid end time", ErrInvalidInput)
		}
		rule.EndTime = endTime
	}
	if req.Days != nil {
		days, err := models.ToDomainDays(*req.Days)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rule.Days = days
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	return nil
}

// checkFieldExists проверяет существование площадки через FieldService
func (s *Service) checkFieldExists(ctx context.Context, fieldID string) error {
	_, err := s.fieldClient.GetField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("checkFieldExists: field=%s not found", fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("checkFieldExists: failed to get field=%s: %v", fieldID, err)
		return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}
	return nil
}
