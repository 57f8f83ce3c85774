package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfhq/turf-admin-service/internal/domain"
	fieldClient "github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

// UseCase use case генерации слотов для площадки
type UseCase struct {
	slotRepo    SlotRepository
	fieldClient FieldServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	fieldClient FieldServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		fieldClient: fieldClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет генерацию слотов
// При req.Preview слоты только считаются, без записи в БД. Повторная генерация
// с теми же параметрами безопасна: существующие slot_key пропускаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%d, field=%s, period=%s..%s, days=%d, duration=%d, preview=%t",
		req.UserID, req.FieldID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		len(req.Days), req.DurationMinutes, req.Preview)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку - заодно проверяем её существование
	field, err := uc.fieldClient.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			uc.logger.Warn("GenerateSlots: field=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Определяем базовую цену: явная из запроса или базовая цена площадки
	basePrice := field.BasePrice
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}

	// 4. Генерируем слоты
	slots, err := generateSlots(
		req.FieldID,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.DailyStartTime,
		req.DailyEndTime,
		req.DurationMinutes,
		basePrice,
	)
	if err != nil {
		uc.logger.Error("GenerateSlots: generation failed for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: generation failed: %v", ErrInternal, err)
	}

	// 5. Предпросмотр - возвращаем итоги без сохранения
	if req.Preview {
		uc.logger.Info("GenerateSlots: preview for field=%s, generated=%d", req.FieldID, len(slots))
		return buildResponse(req, slots, 0), nil
	}

	// 6. Сохраняем пакет слотов в одной транзакции
	var saved int64
	if len(slots) > 0 {
		err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
			count, err := uc.slotRepo.SaveBatch(ctx, slots)
			if err != nil {
				return err
			}
			saved = count
			return nil
		})
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to save slots for field=%s: %v", req.FieldID, err)
			return nil, fmt.Errorf("%w: failed to save slots: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GenerateSlots: field=%s, generated=%d, saved=%d, skipped=%d",
		req.FieldID, len(slots), saved, int64(len(slots))-saved)

	return buildResponse(req, slots, saved), nil
}
