package list_requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
)

const msgInvalidQuery = "invalid query parameters"

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

// Handle GET /api/v1/maintenance?status=open&priority=urgent&overdueOnly=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /maintenance - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("GET /maintenance - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /maintenance - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

func parseQuery(r *http.Request) (*models.ListRequest, error) {
	query := r.URL.Query()
	req := &models.ListRequest{}

	if value := query.Get("roomId"); value != "" {
		roomID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}
	if value := query.Get("assignedTo"); value != "" {
		staffID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		req.AssignedTo = &staffID
	}
	if value := query.Get("status"); value != "" {
		req.Status = &value
	}
	if value := query.Get("priority"); value != "" {
		req.Priority = &value
	}
	if value := query.Get("overdueOnly"); value != "" {
		overdue, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		req.OverdueOnly = overdue
	}
	if value := query.Get("startDate"); value != "" {
		req.StartDate = &value
	}
	if value := query.Get("endDate"); value != "" {
		req.EndDate = &value
	}

	return req, nil
}
