package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
)

type leaveAllocationRepositoryImpl struct {
	db *database.DB
}

func NewLeaveAllocationRepository(db *database.DB) leave.LeaveAllocationRepository {
	return &leaveAllocationRepositoryImpl{db: db}
}

// GetByEmployeeYear implements leave.LeaveAllocationRepository.
func (r *leaveAllocationRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT la.id, la.employee_id, la.leave_type_id, la.year, la.allocated_days, la.used_days,
			la.pending_days, la.created_at, la.updated_at, lt.name, lt.code, lt.is_paid
		FROM leave_allocations la
		JOIN leave_types lt ON la.leave_type_id = lt.id
		WHERE la.employee_id = $1 AND la.year = $2
		ORDER BY lt.code
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave allocations: %w", err)
	}
	defer rows.Close()

	var allocations []leave.LeaveAllocation
	for rows.Next() {
		var a leave.LeaveAllocation
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.LeaveTypeID, &a.Year, &a.AllocatedDays, &a.UsedDays,
			&a.PendingDays, &a.CreatedAt, &a.UpdatedAt, &a.LeaveTypeName, &a.LeaveTypeCode, &a.IsPaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave allocations: %w", err)
	}

	return allocations, nil
}
