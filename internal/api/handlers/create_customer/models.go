package create_customer

import (
	customerModels "github.com/turfhq/turf-admin-service/internal/service/customers/models"
)

// CreateCustomerRequest HTTP request model
type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCustomerRequest) ToServiceRequest(userID int64) *customerModels.CreateCustomerRequest {
	return &customerModels.CreateCustomerRequest{
		UserID: userID,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
	}
}
