package get_customers

import (
	"context"

	customerModels "github.com/turfhq/turf-admin-service/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, search *string) (*customerModels.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
