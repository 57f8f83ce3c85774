package models

import (
	"errors"
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

var (
	// ErrInvalidRuleType возвращается при некорректном типе правила
	ErrInvalidRuleType = errors.New("invalid pricing rule type")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidDays возвращается при некорректном наборе дней недели
	ErrInvalidDays = errors.New("invalid days set")
)

// Request модели

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	UserID     int64    `json:"userId"`
	FieldID    string   `json:"fieldId"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`       // peak | off-peak | weekend | holiday
	Multiplier float64  `json:"multiplier"` // 0.8 = скидка 20%, 1.5 = надбавка 50%
	StartTime  string   `json:"startTime"`  // "17:00"
	EndTime    string   `json:"endTime"`    // "21:00"
	Days       []string `json:"days,omitempty"` // пустой список = все дни недели
	IsActive   *bool    `json:"isActive,omitempty"`
}

// ToDomainRule конвертирует request в domain модель
func (r *CreateRuleRequest) ToDomainRule() (*domain.PricingRule, error) {
	ruleType, err := ToDomainRuleType(r.Type)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	days, err := ToDomainDays(r.Days)
	if err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.PricingRule{
		FieldID:    r.FieldID,
		Name:       r.Name,
		Type:       ruleType,
		Multiplier: r.Multiplier,
		StartTime:  startTime,
		EndTime:    endTime,
		Days:       days,
		IsActive:   isActive,
	}, nil
}

// UpdateRuleRequest запрос на частичное обновление правила
// Указанные поля заменяют текущие значения, nil-поля остаются без изменений
type UpdateRuleRequest struct {
	UserID     int64     `json:"userId"`
	Name       *string   `json:"name,omitempty"`
	Type       *string   `json:"type,omitempty"`
	Multiplier *float64  `json:"multiplier,omitempty"`
	StartTime  *string   `json:"startTime,omitempty"`
	EndTime    *string   `json:"endTime,omitempty"`
	Days       *[]string `json:"days,omitempty"`
	IsActive   *bool     `json:"isActive,omitempty"`
}

// ApplyTemplateRequest запрос на применение шаблона правил
type ApplyTemplateRequest struct {
	UserID   int64  `json:"userId"`
	FieldID  string `json:"fieldId"`
	Template string `json:"template"` // standard-peak-hours | weekend-focus | flat-rate
}

// Response модели

// RuleResponse ответ с данными правила ценообразования
type RuleResponse struct {
	ID         int64    `json:"id"`
	FieldID    string   `json:"fieldId"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Multiplier float64  `json:"multiplier"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Days       []string `json:"days"`
	IsActive   bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// ApplyTemplateResponse ответ на применение шаблона
type ApplyTemplateResponse struct {
	Template      string         `json:"template"`
	RemovedRules  int64          `json:"removedRules"`
	CreatedRules  []RuleResponse `json:"createdRules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(rule *domain.PricingRule) *RuleResponse {
	if rule == nil {
		return nil
	}

	days := make([]string, len(rule.Days))
	for i, d := range rule.Days {
		days[i] = string(d)
	}

	return &RuleResponse{
		ID:         rule.ID,
		FieldID:    rule.FieldID,
		Name:       rule.Name,
		Type:       string(rule.Type),
		Multiplier: rule.Multiplier,
		StartTime:  rule.StartTime.String(),
		EndTime:    rule.EndTime.String(),
		Days:       days,
		IsActive:   rule.IsActive,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.PricingRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}

// ToDomainRuleType конвертирует строку в domain.RuleType с валидацией
func ToDomainRuleType(ruleType string) (domain.RuleType, error) {
	t := domain.RuleType(ruleType)
	for _, valid := range domain.RuleTypes {
		if t == valid {
			return t, nil
		}
	}
	return "", ErrInvalidRuleType
}

// ToDomainDays конвертирует список строк в дни недели.
// Пустой список означает "все дни недели".
func ToDomainDays(days []string) ([]domain.Weekday, error) {
	if len(days) == 0 {
		result := make([]domain.Weekday, len(domain.AllWeekdays))
		copy(result, domain.AllWeekdays)
		return result, nil
	}

	result := make([]domain.Weekday, 0, len(days))
	seen := make(map[domain.Weekday]bool, len(days))
	for _, d := range days {
		day, err := domain.ParseWeekday(d)
		if err != nil {
			return nil, ErrInvalidDays
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		result = append(result, day)
	}

	return result, nil
}
