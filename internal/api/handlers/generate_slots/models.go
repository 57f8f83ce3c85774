package generate_slots

import (
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	generateSlots "github.com/turfhq/turf-admin-service/internal/usecase/generate_slots"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate       string   `json:"startDate"` // "2025-10-13"
	EndDate         string   `json:"endDate"`   // "2025-10-26"
	Days            []string `json:"days"`      // ["monday", "wednesday"]
	DailyStartTime  string   `json:"dailyStartTime"`
	DailyEndTime    string   `json:"dailyEndTime"`
	DurationMinutes int      `json:"durationMinutes"`
	BasePrice       *float64 `json:"basePrice,omitempty"`
	Preview         bool     `json:"preview,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	FieldID          string         `json:"fieldId"`
	Preview          bool           `json:"preview"`
	GeneratedCount   int            `json:"generatedCount"`
	SavedCount       int64          `json:"savedCount"`
	SkippedCount     int64          `json:"skippedCount"`
	EstimatedRevenue float64        `json:"estimatedRevenue"`
	Slots            []SlotResponse `json:"slots"`
}

// SlotResponse краткое представление слота
type SlotResponse struct {
	SlotKey   string  `json:"slotKey"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(userID int64, fieldID string) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	dailyStart, err := types.NewTimeStringFromString(r.DailyStartTime)
	if err != nil {
		return nil, err
	}

	dailyEnd, err := types.NewTimeStringFromString(r.DailyEndTime)
	if err != nil {
		return nil, err
	}

	days := make([]domain.Weekday, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, domain.Weekday(d))
	}

	return &generateSlots.Request{
		UserID:          userID,
		FieldID:         fieldID,
		StartDate:       startDate,
		EndDate:         endDate,
		Days:            days,
		DailyStartTime:  dailyStart,
		DailyEndTime:    dailyEnd,
		DurationMinutes: r.DurationMinutes,
		BasePrice:       r.BasePrice,
		Preview:         r.Preview,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotKey:   slot.SlotKey,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Price:     slot.Price,
		})
	}

	return &GenerateSlotsResponse{
		FieldID:          resp.FieldID,
		Preview:          resp.Preview,
		GeneratedCount:   resp.GeneratedCount,
		SavedCount:       resp.SavedCount,
		SkippedCount:     resp.SkippedCount,
		EstimatedRevenue: resp.EstimatedRevenue,
		Slots:            slots,
	}
}
