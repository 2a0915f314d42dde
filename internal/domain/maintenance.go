package domain

import "time"

// IssueType represents the category of a maintenance issue
type IssueType string

const (
	IssuePlumbing    IssueType = "plumbing"
	IssueElectrical  IssueType = "electrical"
	IssueFurniture   IssueType = "furniture"
	IssueHVAC        IssueType = "hvac"
	IssueCleanliness IssueType = "cleanliness"
	IssueSafety      IssueType = "safety"
	IssueOther       IssueType = "other"
)

// IssueTypes lists every valid issue type.
var IssueTypes = []IssueType{
	IssuePlumbing,
	IssueElectrical,
	IssueFurniture,
	IssueHVAC,
	IssueCleanliness,
	IssueSafety,
	IssueOther,
}

// Priority represents the urgency of a maintenance request
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// slaByPriority is the maximum resolution time per priority. A request still
// unresolved past its deadline is overdue.
var slaByPriority = map[Priority]time.Duration{
	PriorityUrgent: 4 * time.Hour,
	PriorityHigh:   24 * time.Hour,
	PriorityMedium: 72 * time.Hour,
	PriorityLow:    168 * time.Hour,
}

// SLADuration returns the resolution SLA for the given priority.
// Unknown priorities get the low-priority SLA.
func SLADuration(p Priority) time.Duration {
	if d, ok := slaByPriority[p]; ok {
		return d
	}
	return slaByPriority[PriorityLow]
}

// MaintenanceStatus represents the workflow state of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceAssigned   MaintenanceStatus = "assigned"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenanceRequest represents an issue reported for a room
type MaintenanceRequest struct {
	ID         int64
	RoomID     int64
	BookingID  *int64 // booking in the room when the issue was reported
	ReportedBy *int64
	AssignedTo *int64

	IssueType   IssueType
	Priority    Priority
	Status      MaintenanceStatus
	Description string

	// BlocksRoom marks issues severe enough to pull the room out of inventory
	// until the work is completed.
	BlocksRoom bool

	Notes             *string
	ResolutionDetails *string

	CreatedAt   time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// IsTerminal returns true if the request reached a final state.
func (r *MaintenanceRequest) IsTerminal() bool {
	return r.Status == MaintenanceCompleted || r.Status == MaintenanceCancelled
}

// Deadline returns the SLA deadline for the request.
func (r *MaintenanceRequest) Deadline() time.Time {
	return r.CreatedAt.Add(SLADuration(r.Priority))
}

// IsOverdue returns true if the request missed its SLA deadline and is not
// yet resolved.
func (r *MaintenanceRequest) IsOverdue(now time.Time) bool {
	return !r.IsTerminal() && now.After(r.Deadline())
}

// CanBeAssigned returns true if the request may be assigned to staff.
func (r *MaintenanceRequest) CanBeAssigned() bool {
	return r.Status == MaintenanceOpen || r.Status == MaintenanceAssigned
}

// CanStart returns true if work on the request may begin.
func (r *MaintenanceRequest) CanStart() bool {
	return r.Status == MaintenanceAssigned
}

// CanComplete returns true if the request may be completed.
func (r *MaintenanceRequest) CanComplete() bool {
	return r.Status == MaintenanceInProgress
}

// CanBeCancelled returns true if the request may be cancelled.
func (r *MaintenanceRequest) CanBeCancelled() bool {
	return !r.IsTerminal()
}

// ValidIssueType reports whether s names a known issue type.
func ValidIssueType(s string) bool {
	for _, t := range IssueTypes {
		if IssueType(s) == t {
			return true
		}
	}
	return false
}

// ValidPriority reports whether s names a known priority.
func ValidPriority(s string) bool {
	for _, p := range Priorities {
		if Priority(s) == p {
			return true
		}
	}
	return false
}

// MaintenanceFilter filter for listing maintenance requests
type MaintenanceFilter struct {
	RoomID      *int64
	AssignedTo  *int64
	Status      *MaintenanceStatus
	Priority    *Priority
	OverdueOnly bool
	StartDate   *time.Time // created within [StartDate, EndDate)
	EndDate     *time.Time
}
