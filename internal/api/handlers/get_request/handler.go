package get_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
)

const (
	msgInvalidRequestID = "invalid request ID"
	msgNotFound         = "maintenance request not found"
)

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/maintenance/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /maintenance/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	request, err := h.service.Get(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrRequestNotFound):
			h.logger.Warn("GET /maintenance/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /maintenance/{id} - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, request)
}
