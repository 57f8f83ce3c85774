package get_fields

import (
	"context"

	"github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

type FieldServiceClient interface {
	ListFields(ctx context.Context) ([]fieldservice.Field, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
