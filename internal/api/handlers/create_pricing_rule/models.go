package create_pricing_rule

import (
	pricingModels "github.com/turfhq/turf-admin-service/internal/service/pricing/models"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Multiplier float64  `json:"multiplier"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Days       []string `json:"days,omitempty"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRuleRequest) ToServiceRequest(userID int64, fieldID string) *pricingModels.CreateRuleRequest {
	return &pricingModels.CreateRuleRequest{
		UserID:     userID,
		FieldID:    fieldID,
		Name:       r.Name,
		Type:       r.Type,
		Multiplier: r.Multiplier,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Days:       r.Days,
		IsActive:   r.IsActive,
	}
}
