package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSLADuration(t *testing.T) {
	assert.Equal(t, 4*time.Hour, SLADuration(PriorityUrgent))
	assert.Equal(t, 24*time.Hour, SLADuration(PriorityHigh))
	assert.Equal(t, 72*time.Hour, SLADuration(PriorityMedium))
	assert.Equal(t, 168*time.Hour, SLADuration(PriorityLow))

	// Unknown priority falls back to the low SLA
	assert.Equal(t, 168*time.Hour, SLADuration(Priority("bogus")))
}

func TestMaintenanceRequest_IsOverdue(t *testing.T) {
	created := time.Date(2025, time.October, 10, 9, 0, 0, 0, time.UTC)

	urgent := &MaintenanceRequest{
		Priority:  PriorityUrgent,
		Status:    MaintenanceOpen,
		CreatedAt: created,
	}

	assert.False(t, urgent.IsOverdue(created.Add(3*time.Hour)))
	assert.False(t, urgent.IsOverdue(created.Add(4*time.Hour)))
	assert.True(t, urgent.IsOverdue(created.Add(4*time.Hour+time.Minute)))

	// Resolved requests are never overdue
	done := &MaintenanceRequest{
		Priority:  PriorityUrgent,
		Status:    MaintenanceCompleted,
		CreatedAt: created,
	}
	assert.False(t, done.IsOverdue(created.Add(48*time.Hour)))

	cancelled := &MaintenanceRequest{
		Priority:  PriorityUrgent,
		Status:    MaintenanceCancelled,
		CreatedAt: created,
	}
	assert.False(t, cancelled.IsOverdue(created.Add(48*time.Hour)))
}

func TestMaintenanceRequest_Deadline(t *testing.T) {
	created := time.Date(2025, time.October, 10, 9, 0, 0, 0, time.UTC)
	r := &MaintenanceRequest{Priority: PriorityHigh, CreatedAt: created}

	assert.Equal(t, created.Add(24*time.Hour), r.Deadline())
}

func TestMaintenanceRequest_Workflow(t *testing.T) {
	tests := []struct {
		status    MaintenanceStatus
		canAssign bool
		canStart  bool
		canFinish bool
		canCancel bool
	}{
		{MaintenanceOpen, true, false, false, true},
		{MaintenanceAssigned, true, true, false, true},
		{MaintenanceInProgress, false, false, true, true},
		{MaintenanceCompleted, false, false, false, false},
		{MaintenanceCancelled, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &MaintenanceRequest{Status: tt.status}
			assert.Equal(t, tt.canAssign, r.CanBeAssigned())
			assert.Equal(t, tt.canStart, r.CanStart())
			assert.Equal(t, tt.canFinish, r.CanComplete())
			assert.Equal(t, tt.canCancel, r.CanBeCancelled())
		})
	}
}

func TestValidIssueTypeAndPriority(t *testing.T) {
	assert.True(t, ValidIssueType("plumbing"))
	assert.True(t, ValidIssueType("other"))
	assert.False(t, ValidIssueType("roof"))

	assert.True(t, ValidPriority("urgent"))
	assert.False(t, ValidPriority("critical"))
}
