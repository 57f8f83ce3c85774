package update_pricing_rule

import (
	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

// UpdateRuleRequest HTTP request model, все поля опциональны
type UpdateRuleRequest struct {
	Name       *string   `json:"name,omitempty"`
	Type       *string   `json:"type,omitempty"`
	Multiplier *float64  `json:"multiplier,omitempty"`
	StartTime  *string   `json:"startTime,omitempty"`
	EndTime    *string   `json:"endTime,omitempty"`
	Days       *[]string `json:"days,omitempty"`
	IsActive   *bool     `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRuleRequest) ToServiceRequest(userID int64) *pricingModels.UpdateRuleRequest {
	return &pricingModels.UpdateRuleRequest{
		UserID:     userID,
		Name:       r.Name,
		Type:       r.Type,
		Multiplier: r.Multiplier,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Days:       r.Days,
		IsActive:   r.IsActive,
	}
}
