package get_pricing_rules

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
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

// Handle GET /api/v1/fields/{fieldId}/pricing/rules?onlyActive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID := vars["fieldId"]

	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.ListRules(r.Context(), fieldID, onlyActive)
	if err != nil {
		h.logger.Error("GET /fields/{id}/pricing/rules - Failed: field=%s, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields/{id}/pricing/rules - Retrieved %d rules: field=%s", len(result.Rules), fieldID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
