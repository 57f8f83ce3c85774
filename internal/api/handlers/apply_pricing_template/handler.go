package apply_pricing_template

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
	msgTemplateNotFound   = "шаблон тарифов не найден"
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

// Handle POST /api/v1/fields/{fieldId}/pricing/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID := vars["fieldId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields/{id}/pricing/templates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ApplyTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/pricing/templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyTemplate(r.Context(), req.ToServiceRequest(userID, fieldID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrTemplateNotFound):
			h.logger.Warn("POST /fields/{id}/pricing/templates - Template not found: template=%s", req.Template)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, pricing.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/pricing/templates - Field not found: field=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("POST /fields/{id}/pricing/templates - Failed: field=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/pricing/templates - Template applied: template=%s, field=%s, removed=%d, created=%d, user_id=%d",
		result.Template, fieldID, result.RemovedRules, len(result.CreatedRules), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
