package delete_field_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
	"github.com/turfhq/turf-admin-service/internal/api/middleware"
	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/internal/service/slots"
)

const (
	msgInvalidDateRange = "некорректный период: ожидаются параметры from и to в формате YYYY-MM-DD"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// DeletedResponse результат массового удаления открытых слотов
type DeletedResponse struct {
	FieldID string `json:"fieldId"`
	Deleted int64  `json:"deleted"`
}

// Handle DELETE /api/v1/fields/{fieldId}/slots?from=&to=
// Удаляет только открытые слоты за период, брони и блокировки не трогает
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID := vars["fieldId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /fields/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("DELETE /fields/{id}/slots - Invalid from date: %s", query.Get("from"))
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("DELETE /fields/{id}/slots - Invalid to date: %s", query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	deleted, err := h.service.DeleteOpenByRange(r.Context(), fieldID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("DELETE /fields/{id}/slots - Invalid input: field=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("DELETE /fields/{id}/slots - Failed: field=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{id}/slots - Deleted %d open slots: field=%s, user_id=%d", deleted, fieldID, userID)
	handlers.RespondJSON(w, http.StatusOK, &DeletedResponse{
		FieldID: fieldID,
		Deleted: deleted,
	})
}
