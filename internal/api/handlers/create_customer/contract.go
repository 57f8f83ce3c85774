package create_customer

import (
	"context"

	customerModels "github.com/turfhq/turf-admin-service/internal/service/customers/models"
)

type CustomerService interface {
	Create(ctx context.Context, req *customerModels.CreateCustomerRequest) (*customerModels.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
