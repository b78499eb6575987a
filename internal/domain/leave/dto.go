package leave

import "github.com/shopspring/decimal"

type LeaveAllocationResponse struct {
	ID            string          `json:"id"`
	LeaveTypeID   string          `json:"leave_type_id"`
	LeaveTypeName string          `json:"leave_type_name"`
	LeaveTypeCode string          `json:"leave_type_code"`
	IsPaid        bool            `json:"is_paid"`
	Year          int             `json:"year"`
	AllocatedDays decimal.Decimal `json:"allocated_days"`
	UsedDays      decimal.Decimal `json:"used_days"`
	PendingDays   decimal.Decimal `json:"pending_days"`
	AvailableDays decimal.Decimal `json:"available_days"`
}

func NewLeaveAllocationResponse(a LeaveAllocation) LeaveAllocationResponse {
	return LeaveAllocationResponse{
		ID:            a.ID,
		LeaveTypeID:   a.LeaveTypeID,
		LeaveTypeName: a.LeaveTypeName,
		LeaveTypeCode: a.LeaveTypeCode,
		IsPaid:        a.IsPaid,
		Year:          a.Year,
		AllocatedDays: a.AllocatedDays,
		UsedDays:      a.UsedDays,
		PendingDays:   a.PendingDays,
		AvailableDays: a.AvailableDays(),
	}
}
