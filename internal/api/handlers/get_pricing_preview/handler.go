package get_pricing_preview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/turfhq/turf-admin-service/internal/api/handlers"
	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/internal/usecase/get_pricing_preview"
)

const (
	msgInvalidBasePrice = "некорректное значение basePrice"
	msgInvalidDay       = "некорректное значение day"
	msgInvalidInput     = "некорректные параметры запроса"
	msgFieldNotFound    = "площадка не найдена"
)

type Handler struct {
	useCase PreviewUseCase
	logger  Logger
}

func NewHandler(useCase PreviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/pricing/preview?basePrice=&day=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID := vars["fieldId"]

	req := &get_pricing_preview.Request{
		FieldID: fieldID,
	}

	query := r.URL.Query()

	if raw := query.Get("basePrice"); raw != "" {
		basePrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/pricing/preview - Invalid basePrice: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidBasePrice)
			return
		}
		req.BasePrice = &basePrice
	}

	if raw := query.Get("day"); raw != "" {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/pricing/preview - Invalid day: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}
		req.Day = &day
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_pricing_preview.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/pricing/preview - Invalid input: field=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, get_pricing_preview.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/pricing/preview - Field not found: field=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /fields/{id}/pricing/preview - Failed: field=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/pricing/preview - Preview built: field=%s, points=%d", fieldID, len(result.Points))
	handlers.RespondJSON(w, http.StatusOK, result)
}
