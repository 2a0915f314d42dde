package assign_request

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
	msgInvalidRequestID    = "invalid request ID"
	msgInvalidRequestBody  = "invalid request body"
	msgNotFound            = "maintenance request not found"
	msgStaffNotFound       = "staff member not found"
	msgNotMaintenanceStaff = "user cannot work maintenance requests"
	msgIllegalTransition   = "request cannot be assigned in its current state"
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

// Handle PATCH /api/v1/maintenance/{requestId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/assign - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req models.AssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.Assign(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrRequestNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/assign - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrStaffNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/assign - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, maintenance.ErrNotMaintenanceStaff):
			h.logger.Warn("PATCH /maintenance/{id}/assign - Wrong role: staff_id=%d", req.StaffID)
			handlers.RespondBadRequest(w, msgNotMaintenanceStaff)

		case errors.Is(err, maintenance.ErrIllegalTransition):
			h.logger.Warn("PATCH /maintenance/{id}/assign - Illegal transition: request_id=%d", requestID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /maintenance/{id}/assign - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/assign - Assigned: request_id=%d, staff_id=%d", requestID, req.StaffID)
	handlers.RespondJSON(w, http.StatusOK, request)
}
