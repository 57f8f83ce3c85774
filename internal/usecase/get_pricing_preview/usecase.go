package get_pricing_preview

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfhq/turf-admin-service/internal/domain"
	fieldClient "github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

// UseCase use case почасового превью ценообразования площадки
type UseCase struct {
	pricingRepo PricingRepository
	fieldClient FieldServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingRepo PricingRepository,
	fieldClient FieldServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		fieldClient: fieldClient,
		logger:      logger,
	}
}

// Execute строит 24-точечную сетку цен для площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPricingPreview: field=%s, basePrice=%v, day=%v", req.FieldID, req.BasePrice, req.Day)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPricingPreview: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку - базовая цена по умолчанию берётся из неё
	field, err := uc.fieldClient.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			uc.logger.Warn("GetPricingPreview: field=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetPricingPreview: failed to get field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	basePrice := field.BasePrice
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}

	// 3. Получаем активные правила площадки
	rules, err := uc.pricingRepo.ListByField(ctx, req.FieldID, true)
	if err != nil {
		uc.logger.Error("GetPricingPreview: failed to get rules for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	// 4. Строим сетку цен
	points := buildPreview(basePrice, rules, req.Day)

	resp := &Response{
		FieldID:   req.FieldID,
		BasePrice: basePrice,
		Points:    points,
	}
	if req.Day != nil {
		dayStr := string(*req.Day)
		resp.Day = &dayStr
	}

	uc.logger.Info("GetPricingPreview: field=%s, %d rules, %d points", req.FieldID, len(rules), len(points))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FieldID == "" {
		return fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return fmt.Errorf("%w: base price cannot be negative", ErrInvalidInput)
		}
		if *req.BasePrice > domain.MaxBasePrice {
			return fmt.Errorf("%w: base price exceeds %d", ErrInvalidInput, domain.MaxBasePrice)
		}
	}

	if req.Day != nil {
		if _, err := domain.ParseWeekday(string(*req.Day)); err != nil {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, *req.Day)
		}
	}

	return nil
}
