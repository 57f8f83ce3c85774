package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfhq/turf-admin-service/internal/domain"
	customerRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/customer"
	slotRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	pricingRepo  PricingRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	pricingRepo PricingRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		pricingRepo:  pricingRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Слот блокируется сериализуемой транзакцией: чтение внутри транзакции идёт
// с FOR UPDATE, поэтому два одновременных бронирования одного слота не пройдут.
// Итоговая цена = базовая цена слота × максимальный множитель среди активных
// правил площадки, действующих в день и час слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, customer=%d, slot=%d", req.UserID, req.CustomerID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента до открытия транзакции
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var result *domain.Booking
	var basePrice, multiplier float64

	// 3. Бронируем слот в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Слот должен быть открыт
		if !slot.IsOpen() {
			uc.logger.Warn("CreateBooking: slot id=%d is not available, status=%s", slot.ID, slot.Status)
			return ErrSlotNotAvailable
		}

		// 3.3. Считаем итоговую цену по активным правилам площадки
		rules, err := uc.pricingRepo.ListByField(txCtx, slot.FieldID, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get pricing rules for field=%s: %v", slot.FieldID, err)
			return fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
		}

		day := domain.WeekdayOfDate(slot.Date)
		hour := slot.StartTime.Hour()
		basePrice = slot.Price
		multiplier = domain.ResolveMultiplierForDay(rules, day, hour)
		price := domain.EffectivePriceForDay(basePrice, rules, day, hour)

		uc.logger.Info("CreateBooking: slot id=%d, day=%s, hour=%d, base=%.2f, multiplier=%.2f, price=%.2f",
			slot.ID, day, hour, basePrice, multiplier, price)

		// 3.4. Создаем бронирование
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			FieldID:         slot.FieldID,
			SlotID:          slot.ID,
			Date:            slot.Date,
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Price:           price,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.5. Помечаем слот занятым
		if err := uc.slotRepo.UpdateStatus(txCtx, slot.ID, domain.SlotStatusBooked); err != nil {
			uc.logger.Error("CreateBooking: failed to mark slot id=%d as booked: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to mark slot as booked: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for customer=%d, slot=%d",
		result.ID, req.CustomerID, req.SlotID)

	return buildResponse(result, basePrice, multiplier), nil
}
