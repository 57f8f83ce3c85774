package generate_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/ptr"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:          1,
		FieldID:         "field-1",
		StartDate:       date("2025-10-13"),
		EndDate:         date("2025-10-19"),
		Days:            []domain.Weekday{domain.Monday, domain.Friday},
		DailyStartTime:  types.TimeString("09:00"),
		DailyEndTime:    types.TimeString("18:00"),
		DurationMinutes: 60,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(req *Request) {},
		},
		{
			name:    "empty field id",
			mutate:  func(req *Request) { req.FieldID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end date before start date",
			mutate:  func(req *Request) { req.EndDate = date("2025-10-12") },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "range exceeds one year",
			mutate:  func(req *Request) { req.EndDate = date("2027-01-01") },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "empty days",
			mutate:  func(req *Request) { req.Days = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown weekday",
			mutate:  func(req *Request) { req.Days = []domain.Weekday{"someday"} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too short",
			mutate:  func(req *Request) { req.DurationMinutes = 10 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too long",
			mutate:  func(req *Request) { req.DurationMinutes = 600 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "daily start equals daily end",
			mutate: func(req *Request) {
				req.DailyStartTime = types.TimeString("10:00")
				req.DailyEndTime = types.TimeString("10:00")
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative base price",
			mutate:  func(req *Request) { req.BasePrice = ptr.Ptr(-1.0) },
			wantErr: ErrInvalidInput,
		},
		{
			name:   "single day range is valid",
			mutate: func(req *Request) { req.EndDate = req.StartDate },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
