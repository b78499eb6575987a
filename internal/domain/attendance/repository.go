package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CountPresentDays counts days with status present in the inclusive range.
	CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}
