package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CountPresentDays implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendance
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND status = $4
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end, attendance.StatusPresent).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present days: %w", err)
	}
	return count, nil
}
