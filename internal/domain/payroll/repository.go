package payroll

import (
	"context"
	"time"
)

// SalaryComponentRepository persists the derived component set of each employee.
type SalaryComponentRepository interface {
	// DeactivateByEmployeeID marks every active component of the employee inactive.
	DeactivateByEmployeeID(ctx context.Context, employeeID string) error
	CreateBatch(ctx context.Context, components []SalaryComponent) error
	GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]SalaryComponent, error)
}

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Create fails with ErrDuplicatePayrollPeriod when the unique period constraint fires.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	MarkPaid(ctx context.Context, id string, paymentDate time.Time, paidBy string) error
}
