package get_pricing_preview

import "github.com/turfhq/turf-admin-service/internal/domain"

// buildPreview строит почасовую сетку цен из 24 точек.
// Без дня недели множитель берётся только по часу (поведение графика
// на дашборде); с днём недели правила дополнительно фильтруются по дню
func buildPreview(basePrice float64, rules []*domain.PricingRule, day *domain.Weekday) []PricePoint {
	points := make([]PricePoint, 0, domain.HoursPerDay)

	for hour := 0; hour < domain.HoursPerDay; hour++ {
		var multiplier float64
		if day != nil {
			multiplier = domain.ResolveMultiplierForDay(rules, *day, hour)
		} else {
			multiplier = domain.ResolveMultiplier(rules, hour)
		}

		var price float64
		if day != nil {
			price = domain.EffectivePriceForDay(basePrice, rules, *day, hour)
		} else {
			price = domain.EffectivePrice(basePrice, rules, hour)
		}

		points = append(points, PricePoint{
			Hour:       hour,
			Multiplier: multiplier,
			Price:      price,
		})
	}

	return points
}
