package get_fields

import (
	"net/http"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
	"github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
)

type Handler struct {
	client FieldServiceClient
	logger Logger
}

func NewHandler(client FieldServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// FieldListResponse ответ со списком площадок каталога
type FieldListResponse struct {
	Fields []fieldservice.Field `json:"fields"`
}

// Handle GET /api/v1/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fields, err := h.client.ListFields(r.Context())
	if err != nil {
		h.logger.Error("GET /fields - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields - Retrieved %d fields", len(fields))
	handlers.RespondJSON(w, http.StatusOK, &FieldListResponse{Fields: fields})
}
