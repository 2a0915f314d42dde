package update_request_priority

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
)

const (
	msgInvalidRequestID   = "invalid request ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "maintenance request not found"
	msgIllegalTransition  = "priority of a closed request cannot change"
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

// Handle PATCH /api/v1/maintenance/{requestId}/priority
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/priority - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req models.UpdatePriorityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/priority - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.UpdatePriority(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrRequestNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/priority - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrIllegalTransition):
			h.logger.Warn("PATCH /maintenance/{id}/priority - Request closed: request_id=%d", requestID)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("PATCH /maintenance/{id}/priority - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /maintenance/{id}/priority - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/priority - Priority set: request_id=%d, priority=%s", requestID, request.Priority)
	handlers.RespondJSON(w, http.StatusOK, request)
}
