package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	slotRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/slot"
	"github.com/turfhq/turf-admin-service/internal/service/slots/models"
)

// Service сервис для работы со слотами площадок
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает слоты площадки за период
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots for field=%s", req.FieldID)

	if req.FieldID == "" {
		s.logger.Warn("List: empty field id")
		return nil, fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots, err := s.slotRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d slots for field=%s", len(slots), req.FieldID)
	return models.FromDomainSlotList(slots), nil
}

// UpdateStatus вручную меняет статус слота (блокировка под ремонт и т.п.)
// Перевод из booked обратно в open идёт через отмену бронирования
func (s *Service) UpdateStatus(ctx context.Context, slotID int64, status string) error {
	s.logger.Info("UpdateStatus: updating slot id=%d to status=%s", slotID, status)

	newStatus, err := models.ToDomainSlotStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for slot id=%d", status, slotID)
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateStatus: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("UpdateStatus: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if slot.IsBooked() && newStatus == domain.SlotStatusOpen {
		s.logger.Warn("UpdateStatus: slot id=%d is booked, release it by cancelling the booking", slotID)
		return fmt.Errorf("%w: booked slot is released by cancelling its booking", ErrInvalidStatus)
	}

	if err := s.slotRepo.UpdateStatus(ctx, slotID, newStatus); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("UpdateStatus: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated slot id=%d to status=%s", slotID, newStatus)
	return nil
}

// DeleteOpenByRange удаляет открытые слоты площадки за период
// Занятые и заблокированные слоты не трогаем
func (s *Service) DeleteOpenByRange(ctx context.Context, fieldID string, startDate, endDate time.Time) (int64, error) {
	s.logger.Info("DeleteOpenByRange: field=%s, period=%s..%s",
		fieldID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	if fieldID == "" {
		return 0, fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return 0, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	deleted, err := s.slotRepo.DeleteOpenByFieldAndRange(ctx, fieldID, startDate, endDate)
	if err != nil {
		s.logger.Error("DeleteOpenByRange: repository error for field=%s: %v", fieldID, err)
		return 0, fmt.Errorf("%w: DeleteOpenByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOpenByRange: deleted %d open slots for field=%s", deleted, fieldID)
	return deleted, nil
}
