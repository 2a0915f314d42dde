package start_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
)

const (
	msgInvalidRequestID  = "invalid request ID"
	msgNotFound          = "maintenance request not found"
	msgIllegalTransition = "request must be assigned before work can start"
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

// Handle PATCH /api/v1/maintenance/{requestId}/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/start - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	request, err := h.service.Start(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrRequestNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/start - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrIllegalTransition):
			h.logger.Warn("PATCH /maintenance/{id}/start - Illegal transition: request_id=%d", requestID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /maintenance/{id}/start - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/start - Work started: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, request)
}
