package payroll

import (
	"context"
	"io"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type PayrollService interface {
	// Salary components
	PreviewComponents(ctx context.Context, monthlyWage decimal.Decimal) ([]SalaryComponentResponse, error)
	GetSalaryComponents(ctx context.Context, employeeID string) (EmployeeSalaryComponentsResponse, error)
	RegenerateSalaryComponents(ctx context.Context, employeeID string) (EmployeeSalaryComponentsResponse, error)
	UpdateMonthlyWage(ctx context.Context, req UpdateMonthlyWageRequest) (EmployeeSalaryComponentsResponse, error)

	// Payroll records
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)
	GeneratePayrollBatch(ctx context.Context, req GeneratePayrollBatchRequest) (BatchResult, error)
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PayrollRecordResponse, error)
	ExportPayrollRegister(ctx context.Context, filter PayrollFilter, w io.Writer) error
	ExportPayslip(ctx context.Context, id string, w io.Writer) error

	// Self-service reads scoped to one employee
	GetEmployeePayrollRecord(ctx context.Context, employeeID, id string) (PayrollRecordResponse, error)
	ExportEmployeePayslip(ctx context.Context, employeeID, id string, w io.Writer) error

	// Leave
	GetLeaveAllocations(ctx context.Context, employeeID string, year int) ([]leave.LeaveAllocationResponse, error)
}
