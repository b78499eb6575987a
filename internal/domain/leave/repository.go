package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// GetApprovedOverlapping returns approved requests of the employee that
	// intersect the inclusive range [start, end], joined with their leave type.
	GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}

type LeaveAllocationRepository interface {
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveAllocation, error)
}
