package create_request

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/api/middleware"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
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

// Handle POST /api/v1/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reporterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.Create(r.Context(), &req, reporterID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrRoomNotFound):
			h.logger.Warn("POST /maintenance - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("POST /maintenance - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /maintenance - Failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /maintenance - Request created: request_id=%d, room_id=%d, priority=%s",
		request.ID, request.RoomID, request.Priority)
	handlers.RespondJSON(w, http.StatusCreated, request)
}
