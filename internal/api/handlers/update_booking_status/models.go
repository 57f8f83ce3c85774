package update_booking_status

import (
	bookingModels "github.com/turfhq/turf-admin-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *bookingModels.UpdateStatusRequest {
	return &bookingModels.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
