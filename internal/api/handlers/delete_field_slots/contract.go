package delete_field_slots

import (
	"context"
	"time"
)

type SlotService interface {
	DeleteOpenByRange(ctx context.Context, fieldID string, startDate, endDate time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
