package generate_slots

import (
	"context"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// SaveBatch сохраняет пакет слотов, пропуская уже существующие slot_key
	SaveBatch(ctx context.Context, slots []*domain.TimeSlot) (int64, error)
}

// FieldServiceClient интерфейс клиента для FieldService
type FieldServiceClient interface {
	GetField(ctx context.Context, fieldID string) (*fieldservice.Field, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
