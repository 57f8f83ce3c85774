package get_customers

import (
	"net/http"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var search *string
	if raw := r.URL.Query().Get("search"); raw != "" {
		search = &raw
	}

	result, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /customers - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Retrieved %d customers", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
