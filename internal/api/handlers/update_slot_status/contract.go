package update_slot_status

import (
	"context"
)

type SlotService interface {
	UpdateStatus(ctx context.Context, slotID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
