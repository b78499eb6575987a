package payroll

import (
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
)

// LeaveDays holds the in-period leave day counts of one employee.
type LeaveDays struct {
	Paid   int
	Unpaid int
}

// ClassifyLeaveDays sums the days of each approved request that fall inside
// the inclusive period into the paid or unpaid bucket of its leave type.
func ClassifyLeaveDays(requests []leave.LeaveRequest, periodStart, periodEnd time.Time) LeaveDays {
	var days LeaveDays
	ps, pe := dateOnly(periodStart), dateOnly(periodEnd)

	for _, req := range requests {
		if !req.IsApproved() {
			continue
		}
		n := overlapDays(dateOnly(req.StartDate), dateOnly(req.EndDate), ps, pe)
		if n <= 0 {
			continue
		}
		if req.IsPaid {
			days.Paid += n
		} else {
			days.Unpaid += n
		}
	}
	return days
}

// overlapDays = min(end, periodEnd) - max(start, periodStart) + 1
func overlapDays(start, end, periodStart, periodEnd time.Time) int {
	from := start
	if periodStart.After(from) {
		from = periodStart
	}
	to := end
	if periodEnd.Before(to) {
		to = periodEnd
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
