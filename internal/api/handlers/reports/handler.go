package reports

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/service/reports"
)

const msgMissingPeriod = "startDate and endDate are required as YYYY-MM-DD"

// Handler serves the manager reports. The three period reports share the
// startDate/endDate query contract, the daily summary takes a single date.
type Handler struct {
	service ReportService
	timer   TimeProvider
	logger  Logger
}

func NewHandler(service ReportService, timer TimeProvider, logger Logger) *Handler {
	return &Handler{
		service: service,
		timer:   timer,
		logger:  logger,
	}
}

// HandleOccupancy GET /api/v1/reports/occupancy?startDate=2025-10-01&endDate=2025-10-31
func (h *Handler) HandleOccupancy(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := periodParams(r)
	if !ok {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	report, err := h.service.Occupancy(r.Context(), startDate, endDate)
	if err != nil {
		h.respondServiceError(w, "GET /reports/occupancy", err)
		return
	}

	h.logger.Info("GET /reports/occupancy - Report built: %s..%s", startDate, endDate)
	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleRevenue GET /api/v1/reports/revenue?startDate=2025-10-01&endDate=2025-10-31
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := periodParams(r)
	if !ok {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	report, err := h.service.Revenue(r.Context(), startDate, endDate)
	if err != nil {
		h.respondServiceError(w, "GET /reports/revenue", err)
		return
	}

	h.logger.Info("GET /reports/revenue - Report built: %s..%s", startDate, endDate)
	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleMaintenance GET /api/v1/reports/maintenance?startDate=2025-10-01&endDate=2025-10-31
func (h *Handler) HandleMaintenance(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := periodParams(r)
	if !ok {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	report, err := h.service.Maintenance(r.Context(), startDate, endDate)
	if err != nil {
		h.respondServiceError(w, "GET /reports/maintenance", err)
		return
	}

	h.logger.Info("GET /reports/maintenance - Report built: %s..%s", startDate, endDate)
	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleSummary GET /api/v1/reports/summary?date=2025-10-15
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.timer.Now().Format(domain.DateFormat)
	}

	summary, err := h.service.Summary(r.Context(), date)
	if err != nil {
		h.respondServiceError(w, "GET /reports/summary", err)
		return
	}

	h.logger.Info("GET /reports/summary - Summary built: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, summary)
}

func periodParams(r *http.Request) (startDate, endDate string, ok bool) {
	query := r.URL.Query()
	startDate = query.Get("startDate")
	endDate = query.Get("endDate")
	return startDate, endDate, startDate != "" && endDate != ""
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reports.ErrInvalidPeriod):
		h.logger.Warn("%s - Invalid period: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
