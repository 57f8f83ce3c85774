package update_pricing_rule

import (
	"context"

	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

type PricingService interface {
	UpdateRule(ctx context.Context, fieldID string, ruleID int64, req *pricingModels.UpdateRuleRequest) (*pricingModels.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
