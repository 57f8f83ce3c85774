package pricing

import (
	"fmt"
	"strings"

	"github.com/turfhq/turf-admin-service/internal/domain"
)

// validateRule проверяет бизнес-ограничения правила ценообразования
func (s *Service) validateRule(rule *domain.PricingRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("%w: rule name is required", ErrInvalidInput)
	}
	if len(rule.Name) > domain.MaxRuleNameLength {
		return fmt.Errorf("%w: rule name exceeds %d characters", ErrInvalidInput, domain.MaxRuleNameLength)
	}

	if rule.Multiplier < domain.MinMultiplier || rule.Multiplier > domain.MaxMultiplier {
		return fmt.Errorf("%w: multiplier must be between %.1f and %.1f",
			ErrInvalidInput, domain.MinMultiplier, domain.MaxMultiplier)
	}

	// Окно правила лежит внутри одних суток
	if !rule.StartTime.IsBefore(rule.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if len(rule.Days) == 0 {
		return fmt.Errorf("%w: rule must cover at least one weekday", ErrInvalidInput)
	}

	return nil
}
