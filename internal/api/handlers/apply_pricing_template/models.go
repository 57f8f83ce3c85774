package apply_pricing_template

import (
	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

// ApplyTemplateRequest HTTP request model
type ApplyTemplateRequest struct {
	Template string `json:"template"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ApplyTemplateRequest) ToServiceRequest(userID int64, fieldID string) *pricingModels.ApplyTemplateRequest {
	return &pricingModels.ApplyTemplateRequest{
		UserID:   userID,
		FieldID:  fieldID,
		Template: r.Template,
	}
}
