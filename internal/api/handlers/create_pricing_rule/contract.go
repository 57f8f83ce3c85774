package create_pricing_rule

import (
	"context"

	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

type PricingService interface {
	CreateRule(ctx context.Context, req *pricingModels.CreateRuleRequest) (*pricingModels.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
