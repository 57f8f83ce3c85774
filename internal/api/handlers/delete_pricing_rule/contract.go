package delete_pricing_rule

import (
	"context"
)

type PricingService interface {
	DeleteRule(ctx context.Context, fieldID string, ruleID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
