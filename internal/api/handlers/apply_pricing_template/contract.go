package apply_pricing_template

import (
	"context"

	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

type PricingService interface {
	ApplyTemplate(ctx context.Context, req *pricingModels.ApplyTemplateRequest) (*pricingModels.ApplyTemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
