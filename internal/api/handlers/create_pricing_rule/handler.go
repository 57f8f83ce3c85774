package create_pricing_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
	"github.com/turfhq/turf-admin-service/internal/api/middleware"
	"github.com/turfhq/turf-admin-service/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры правила"
	msgFieldNotFound      = "площадка не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/fields/{fieldId}/pricing/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID := vars["fieldId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields/{id}/pricing/rules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/pricing/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRule(r.Context(), req.ToServiceRequest(userID, fieldID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/pricing/rules - Invalid input: field=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/pricing/rules - Field not found: field=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("POST /fields/{id}/pricing/rules - Failed: field=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/pricing/rules - Rule created: rule_id=%d, field=%s, user_id=%d",
		result.ID, fieldID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
