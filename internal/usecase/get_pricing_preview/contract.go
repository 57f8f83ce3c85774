package get_pricing_preview

import (
	"context"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

// PricingRepository интерфейс репозитория правил ценообразования
type PricingRepository interface {
	ListByField(ctx context.Context, fieldID string, onlyActive bool) ([]*domain.PricingRule, error)
}

// FieldServiceClient интерфейс клиента для FieldService
type FieldServiceClient interface {
	GetField(ctx context.Context, fieldID string) (*fieldservice.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
