package get_pricing_preview

import (
	"context"

	"github.com/turfhq/turf-admin-service/internal/usecase/get_pricing_preview"
)

type PreviewUseCase interface {
	Execute(ctx context.Context, req *get_pricing_preview.Request) (*get_pricing_preview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
