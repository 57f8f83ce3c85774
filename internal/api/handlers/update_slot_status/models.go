package update_slot_status

// UpdateSlotStatusRequest HTTP request model
type UpdateSlotStatusRequest struct {
	Status string `json:"status"`
}
