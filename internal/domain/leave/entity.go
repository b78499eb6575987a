package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default leave type codes
const (
	CodePaidTimeOff = "PTO"
	CodeSickLeave   = "SICK"
	CodeUnpaid      = "UNPAID"
)

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Code        string
	IsPaid      bool
	DefaultDays decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. StartDate and EndDate are inclusive calendar dates.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Status      LeaveRequestStatus
	Reason      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined from leave_types
	LeaveTypeCode string
	IsPaid        bool
}

func (r LeaveRequest) IsApproved() bool {
	return r.Status == LeaveRequestStatusApproved
}

// LeaveAllocation entity, one per employee, leave type and year
type LeaveAllocation struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	Year          int
	AllocatedDays decimal.Decimal
	UsedDays      decimal.Decimal
	PendingDays   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined from leave_types
	LeaveTypeName string
	LeaveTypeCode string
	IsPaid        bool
}

// AvailableDays = allocated - used - pending
func (a LeaveAllocation) AvailableDays() decimal.Decimal {
	return a.AllocatedDays.Sub(a.UsedDays).Sub(a.PendingDays)
}
