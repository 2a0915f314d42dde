package models

import (
	"errors"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

var (
	// ErrInvalidIssueType is returned on an unknown issue type
	ErrInvalidIssueType = errors.New("invalid issue type")

	// ErrInvalidPriority is returned on an unknown priority
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus is returned on an unknown maintenance status
	ErrInvalidStatus = errors.New("invalid maintenance status")

	// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// maintenanceStatuses lists every valid workflow state.
var maintenanceStatuses = []domain.MaintenanceStatus{
	domain.MaintenanceOpen,
	domain.MaintenanceAssigned,
	domain.MaintenanceInProgress,
	domain.MaintenanceCompleted,
	domain.MaintenanceCancelled,
}

// Request models

// CreateRequest reports a new issue for a room.
type CreateRequest struct {
	RoomID      int64   `json:"roomId"`
	IssueType   string  `json:"issueType"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	BlocksRoom  bool    `json:"blocksRoom,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AssignRequest assigns the request to a staff member.
type AssignRequest struct {
	StaffID int64 `json:"staffId"`
}

// CompleteRequest closes the request with its resolution.
type CompleteRequest struct {
	Resolution string `json:"resolution"`
}

// CancelRequest cancels the request.
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// UpdatePriorityRequest changes the urgency of a request.
type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

// ListRequest filters the maintenance listing.
type ListRequest struct {
	RoomID      *int64  `json:"roomId,omitempty"`
	AssignedTo  *int64  `json:"assignedTo,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	OverdueOnly bool    `json:"overdueOnly,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListRequest) ToDomainFilter() (domain.MaintenanceFilter, error) {
	filter := domain.MaintenanceFilter{
		RoomID:      r.RoomID,
		AssignedTo:  r.AssignedTo,
		OverdueOnly: r.OverdueOnly,
	}

	if r.Status != nil {
		status, err := ToDomainMaintenanceStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if r.Priority != nil {
		priority, err := ToDomainPriority(*r.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// Response models

// MaintenanceResponse is the request representation returned by the API.
// Deadline and Overdue are computed from the priority SLA.
type MaintenanceResponse struct {
	ID         int64  `json:"id"`
	RoomID     int64  `json:"roomId"`
	BookingID  *int64 `json:"bookingId,omitempty"`
	ReportedBy *int64 `json:"reportedBy,omitempty"`
	AssignedTo *int64 `json:"assignedTo,omitempty"`

	IssueType   string `json:"issueType"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Description string `json:"description"`
	BlocksRoom  bool   `json:"blocksRoom"`

	Notes             *string `json:"notes,omitempty"`
	ResolutionDetails *string `json:"resolutionDetails,omitempty"`

	Deadline string `json:"deadline"`
	Overdue  bool   `json:"overdue"`

	CreatedAt   string  `json:"createdAt"`
	AssignedAt  *string `json:"assignedAt,omitempty"`
	StartedAt   *string `json:"startedAt,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// MaintenanceListResponse wraps a list of requests.
type MaintenanceListResponse struct {
	Requests []*MaintenanceResponse `json:"requests"`
	Total    int                    `json:"total"`
}

// FromDomainRequest converts a domain request to its API representation.
func FromDomainRequest(req *domain.MaintenanceRequest, now time.Time) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:                req.ID,
		RoomID:            req.RoomID,
		BookingID:         req.BookingID,
		ReportedBy:        req.ReportedBy,
		AssignedTo:        req.AssignedTo,
		IssueType:         string(req.IssueType),
		Priority:          string(req.Priority),
		Status:            string(req.Status),
		Description:       req.Description,
		BlocksRoom:        req.BlocksRoom,
		Notes:             req.Notes,
		ResolutionDetails: req.ResolutionDetails,
		Deadline:          req.Deadline().Format(time.RFC3339),
		Overdue:           req.IsOverdue(now),
		CreatedAt:         req.CreatedAt.Format(time.RFC3339),
		AssignedAt:        formatTimePtr(req.AssignedAt),
		StartedAt:         formatTimePtr(req.StartedAt),
		CompletedAt:       formatTimePtr(req.CompletedAt),
	}
}

// FromDomainRequestList converts a list of domain requests.
func FromDomainRequestList(requests []*domain.MaintenanceRequest, now time.Time) *MaintenanceListResponse {
	responses := make([]*MaintenanceResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, FromDomainRequest(req, now))
	}
	return &MaintenanceListResponse{
		Requests: responses,
		Total:    len(responses),
	}
}

// ToDomainIssueType parses an issue type string.
func ToDomainIssueType(s string) (domain.IssueType, error) {
	if !domain.ValidIssueType(s) {
		return "", ErrInvalidIssueType
	}
	return domain.IssueType(s), nil
}

// ToDomainPriority parses a priority string.
func ToDomainPriority(s string) (domain.Priority, error) {
	if !domain.ValidPriority(s) {
		return "", ErrInvalidPriority
	}
	return domain.Priority(s), nil
}

// ToDomainMaintenanceStatus parses a maintenance status string.
func ToDomainMaintenanceStatus(s string) (domain.MaintenanceStatus, error) {
	for _, status := range maintenanceStatuses {
		if domain.MaintenanceStatus(s) == status {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
