package get_field_slots

import (
	"context"

	slotModels "github.com/turfhq/turf-admin-service/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context, req *slotModels.ListSlotsRequest) (*slotModels.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
