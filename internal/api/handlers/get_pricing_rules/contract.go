package get_pricing_rules

import (
	"context"

	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

type PricingService interface {
	ListRules(ctx context.Context, fieldID string, onlyActive bool) (*pricingModels.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
