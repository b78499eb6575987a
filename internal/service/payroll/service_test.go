package payroll

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	empAsha  = "0192e3a0-0000-7000-8000-000000000001"
	empRavi  = "0192e3a0-0000-7000-8000-000000000002"
	empNoPay = "0192e3a0-0000-7000-8000-000000000003"
	empGone  = "0192e3a0-0000-7000-8000-0000000000ff"
)

type fixture struct {
	store *memStore
	svc   *PayrollServiceImpl
	att   *memAttendanceRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	store.employees[empAsha] = employee.Employee{
		ID: empAsha, EmployeeCode: "EMP-001", FullName: "Asha Rao",
		EmploymentStatus: employee.EmploymentStatusActive, MonthlyWage: ptr(d("50000.00")),
	}
	store.employees[empRavi] = employee.Employee{
		ID: empRavi, EmployeeCode: "EMP-002", FullName: "Ravi Kumar",
		EmploymentStatus: employee.EmploymentStatusActive, MonthlyWage: ptr(d("52000.00")),
	}
	store.employees[empNoPay] = employee.Employee{
		ID: empNoPay, EmployeeCode: "EMP-003", FullName: "New Joiner",
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	att := &memAttendanceRepo{store: store}
	svc := NewPayrollService(
		memTx{store: store},
		memEmployeeRepo{store: store},
		memComponentRepo{store: store},
		memPayrollRepo{store: store},
		memLeaveRequestRepo{store: store},
		memLeaveAllocationRepo{store: store},
		att,
		NewComponentResolver(payroll.DefaultComponentRules()),
		NewCalculator(d("200.00")),
		22,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC) }

	return &fixture{store: store, svc: svc, att: att}
}

func janRequest(employeeID string) payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{
		EmployeeID:     employeeID,
		PayPeriodStart: "2025-01-01",
		PayPeriodEnd:   "2025-01-31",
	}
}

// ========== SALARY COMPONENTS ==========

func TestPreviewComponents(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.PreviewComponents(context.Background(), d("50000"))
	require.NoError(t, err)
	require.Len(t, resp, 7)
	assert.Equal(t, "Basic Salary", resp[0].Name)
	assert.Equal(t, "earning", resp[0].Kind)
	assert.Equal(t, "percent_of_wage", resp[0].Method)
	assert.Empty(t, f.store.components, "preview must not persist")

	_, err = f.svc.PreviewComponents(context.Background(), decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrInvalidWage)
}

func TestRegenerateSalaryComponents_ReplacesWholeSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegenerateSalaryComponents(ctx, empAsha)
	require.NoError(t, err)
	resp, err := f.svc.RegenerateSalaryComponents(ctx, empAsha)
	require.NoError(t, err)

	assert.True(t, d("50000.00").Equal(resp.TotalEarnings))
	assert.True(t, d("3200.00").Equal(resp.TotalDeductions))

	active, err := f.svc.GetSalaryComponents(ctx, empAsha)
	require.NoError(t, err)
	assert.Len(t, active.Components, 7, "only the latest set stays active")
	assert.Len(t, f.store.components, 14)
	for _, c := range active.Components {
		assert.True(t, validator.IsValidUUID(c.ID))
	}
}

func TestRegenerateSalaryComponents_NoWage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegenerateSalaryComponents(context.Background(), empNoPay)
	var wageErr *payroll.InvalidWageError
	require.ErrorAs(t, err, &wageErr)
	assert.Equal(t, empNoPay, wageErr.EmployeeID)
}

func TestRegenerateSalaryComponents_UnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegenerateSalaryComponents(context.Background(), empGone)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.svc.RegenerateSalaryComponents(context.Background(), "not-a-uuid")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateMonthlyWage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegenerateSalaryComponents(ctx, empAsha)
	require.NoError(t, err)

	resp, err := f.svc.UpdateMonthlyWage(ctx, payroll.UpdateMonthlyWageRequest{
		EmployeeID:  empAsha,
		MonthlyWage: d("60000.00"),
	})
	require.NoError(t, err)
	assert.True(t, d("60000.00").Equal(*resp.MonthlyWage))
	assert.True(t, d("60000.00").Equal(resp.TotalEarnings))
	assert.True(t, d("60000.00").Equal(*f.store.employees[empAsha].MonthlyWage))

	active, err := f.svc.GetSalaryComponents(ctx, empAsha)
	require.NoError(t, err)
	require.Len(t, active.Components, 7)
	assert.True(t, d("30000.00").Equal(active.Components[0].ComputedAmount))
}

func TestUpdateMonthlyWage_RollbackKeepsPriorSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegenerateSalaryComponents(ctx, empAsha)
	require.NoError(t, err)
	before, err := f.svc.GetSalaryComponents(ctx, empAsha)
	require.NoError(t, err)

	f.store.failCreateComponents = errBoom
	_, err = f.svc.UpdateMonthlyWage(ctx, payroll.UpdateMonthlyWageRequest{
		EmployeeID:  empAsha,
		MonthlyWage: d("70000.00"),
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, f.store.rollbacks)

	after, err := f.svc.GetSalaryComponents(ctx, empAsha)
	require.NoError(t, err)
	assert.Equal(t, before.Components, after.Components)
	assert.True(t, d("50000.00").Equal(*f.store.employees[empAsha].MonthlyWage))
}

func TestUpdateMonthlyWage_InvalidWage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateMonthlyWage(context.Background(), payroll.UpdateMonthlyWageRequest{
		EmployeeID:  empAsha,
		MonthlyWage: d("-5"),
	})
	var wageErr *payroll.InvalidWageError
	require.ErrorAs(t, err, &wageErr)
	assert.Equal(t, empAsha, wageErr.EmployeeID)
	assert.Equal(t, 0, f.store.commits)
}

// ========== PAYROLL GENERATION ==========

func TestGeneratePayroll_DerivesLeaveAndAttendance(t *testing.T) {
	f := newFixture(t)
	f.store.presentDays[empRavi] = 18
	f.store.leaveRequests = []leave.LeaveRequest{
		{
			EmployeeID: empRavi, LeaveTypeCode: leave.CodeUnpaid, IsPaid: false,
			StartDate: time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveRequestStatusApproved,
		},
		{
			EmployeeID: empRavi, LeaveTypeCode: leave.CodeSickLeave, IsPaid: true,
			StartDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveRequestStatusApproved,
		},
		{
			EmployeeID: empRavi, LeaveTypeCode: leave.CodeUnpaid, IsPaid: false,
			StartDate: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveRequestStatusPending,
		},
	}

	req := janRequest(empRavi)
	req.TotalWorkingDays = ptr(26)
	resp, err := f.svc.GeneratePayroll(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.UnpaidLeaveDays)
	assert.Equal(t, 2, resp.PaidLeaveDays)
	assert.Equal(t, 18, resp.DaysPresent)
	assert.Equal(t, 16, resp.ActualWorkingDays)
	assert.Equal(t, 26, resp.TotalWorkingDays)
	assert.True(t, d("4000.00").Equal(resp.UnpaidLeaveDeduction), "got %s", resp.UnpaidLeaveDeduction)
	assert.True(t, resp.NetPay.Equal(resp.GrossPay.Sub(resp.TotalDeductions)))
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, "Ravi Kumar", *resp.EmployeeName)
	assert.Equal(t, "2025-01-01", resp.PayPeriodStart)
}

func TestGeneratePayroll_ExplicitCountsWin(t *testing.T) {
	f := newFixture(t)
	f.store.presentDays[empAsha] = 10
	f.store.leaveRequests = []leave.LeaveRequest{{
		EmployeeID: empAsha, IsPaid: false, Status: leave.LeaveRequestStatusApproved,
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}}

	req := janRequest(empAsha)
	req.UnpaidLeaveDays = ptr(1)
	req.DaysPresent = ptr(21)
	resp, err := f.svc.GeneratePayroll(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.UnpaidLeaveDays)
	assert.Equal(t, 0, resp.PaidLeaveDays)
	assert.Equal(t, 21, resp.DaysPresent)
	assert.Equal(t, 22, resp.TotalWorkingDays)
}

func TestGeneratePayroll_NoAttendanceDefaultsToWorkingDays(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GeneratePayroll(context.Background(), janRequest(empAsha))
	require.NoError(t, err)
	assert.Equal(t, 22, resp.TotalWorkingDays)
	assert.Equal(t, 22, resp.DaysPresent)
}

func TestGeneratePayroll_BaseSalaryOverride(t *testing.T) {
	f := newFixture(t)

	req := janRequest(empNoPay)
	req.BaseMonthlySalary = ptr(d("30000.00"))
	resp, err := f.svc.GeneratePayroll(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, d("30000.00").Equal(resp.BaseMonthlySalary))
	assert.True(t, d("15000.00").Equal(resp.BasicSalary))
}

func TestGeneratePayroll_NoWage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GeneratePayroll(context.Background(), janRequest(empNoPay))
	assert.ErrorIs(t, err, payroll.ErrInvalidWage)
	assert.Empty(t, f.store.records)
}

func TestGeneratePayroll_InvalidPeriod(t *testing.T) {
	f := newFixture(t)

	req := janRequest(empAsha)
	req.PayPeriodStart, req.PayPeriodEnd = "2025-01-31", "2025-01-01"
	_, err := f.svc.GeneratePayroll(context.Background(), req)

	var periodErr *payroll.InvalidPeriodError
	require.ErrorAs(t, err, &periodErr)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestGeneratePayroll_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:     "nope",
		PayPeriodStart: "01/01/2025",
		HRA:            ptr(d("-1")),
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "pay_period_start")
	assert.Contains(t, fields, "pay_period_end")
	assert.Contains(t, fields, "hra")
}

func TestGeneratePayroll_AmountPrecisionAndRange(t *testing.T) {
	f := newFixture(t)

	req := janRequest(empAsha)
	req.OvertimeHours = ptr(d("10000"))
	req.OvertimeRate = ptr(d("0.001"))
	req.Deductions = ptr(d("0.004"))
	req.SpecialBonus = ptr(d("10000000000"))
	req.DaysPresent = ptr(5000)

	_, err := f.svc.GeneratePayroll(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Equal(t, "must not exceed 9999.99", fields["overtime_hours"])
	assert.Equal(t, "must have at most 2 decimal places", fields["overtime_rate"])
	assert.Equal(t, "must have at most 2 decimal places", fields["deductions"])
	assert.Equal(t, "must not exceed 9999999999.99", fields["special_bonus"])
	assert.Equal(t, "must not exceed 366", fields["days_present"])

	list, err := f.svc.ListPayrollRecords(context.Background(), payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)

	// trailing zeros are not extra precision
	req = janRequest(empAsha)
	req.Deductions = ptr(d("12.500"))
	_, err = f.svc.GeneratePayroll(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateMonthlyWage_AmountRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateMonthlyWage(context.Background(), payroll.UpdateMonthlyWageRequest{
		EmployeeID:  empAsha,
		MonthlyWage: d("10000000000.00"),
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "monthly_wage")

	_, err = f.svc.UpdateMonthlyWage(context.Background(), payroll.UpdateMonthlyWageRequest{
		EmployeeID:  empAsha,
		MonthlyWage: d("-5"),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidWage)
}

func TestGeneratePayroll_DuplicateRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	_, err = f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	var dupErr *payroll.DuplicatePayrollPeriodError
	require.ErrorAs(t, err, &dupErr)
	assert.ErrorIs(t, err, payroll.ErrDuplicatePayrollPeriod)
	assert.Equal(t, empAsha, dupErr.EmployeeID)
	assert.Len(t, f.store.records, 1)
}

// The constraint on insert still catches a duplicate the pre-check missed.
func TestGeneratePayroll_DuplicateCaughtOnInsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	f.store.hideExisting = true
	_, err = f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	assert.ErrorIs(t, err, payroll.ErrDuplicatePayrollPeriod)
	assert.Len(t, f.store.records, 1)
}

func TestGeneratePayroll_AttendanceFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.att.err = errBoom

	_, err := f.svc.GeneratePayroll(context.Background(), janRequest(empAsha))
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, f.store.records)
	assert.Equal(t, 1, f.store.rollbacks)
}

func TestGeneratePayrollBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	result, err := f.svc.GeneratePayrollBatch(ctx, payroll.GeneratePayrollBatchRequest{
		PayPeriodStart: "2025-01-01",
		PayPeriodEnd:   "2025-01-31",
	})
	require.NoError(t, err)

	require.Len(t, result.Generated, 1)
	assert.Equal(t, empRavi, result.Generated[0].EmployeeID)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, empAsha, result.Skipped[0].EmployeeID)
	assert.Equal(t, "payroll already exists for period", result.Skipped[0].Reason)
	assert.Equal(t, empNoPay, result.Skipped[1].EmployeeID)
	assert.Empty(t, result.Failed)
	assert.Len(t, f.store.records, 2)
}

func TestGeneratePayrollBatch_SelectedEmployees(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.GeneratePayrollBatch(context.Background(), payroll.GeneratePayrollBatchRequest{
		PayPeriodStart:   "2025-01-01",
		PayPeriodEnd:     "2025-01-31",
		TotalWorkingDays: ptr(26),
		EmployeeIDs:      []string{empRavi, empGone},
	})
	require.NoError(t, err)

	require.Len(t, result.Generated, 1)
	assert.Equal(t, 26, result.Generated[0].TotalWorkingDays)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, empGone, result.Failed[0].EmployeeID)
}

// ========== READ / PAYMENT ==========

func TestMarkPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	paid, err := f.svc.MarkPaid(ctx, payroll.MarkPaidRequest{ID: created.ID, PaidBy: "admin-1"})
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.PaymentStatus)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, "2025-02-05", *paid.PaymentDate)
	assert.True(t, created.NetPay.Equal(paid.NetPay), "amounts stay immutable")

	_, err = f.svc.MarkPaid(ctx, payroll.MarkPaidRequest{ID: created.ID})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestMarkPaid_ExplicitDateAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	paid, err := f.svc.MarkPaid(ctx, payroll.MarkPaidRequest{ID: created.ID, PaymentDate: ptr("2025-02-01")})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", *paid.PaymentDate)

	_, err = f.svc.MarkPaid(ctx, payroll.MarkPaidRequest{ID: empGone})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestGetAndListPayrollRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)
	_, err = f.svc.GeneratePayroll(ctx, janRequest(empRavi))
	require.NoError(t, err)

	got, err := f.svc.GetPayrollRecord(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.GetPayrollRecord(ctx, empGone)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	list, err := f.svc.ListPayrollRecords(ctx, payroll.PayrollFilter{EmployeeID: ptr(empRavi)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.TotalCount)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.Limit)

	_, err = f.svc.ListPayrollRecords(ctx, payroll.PayrollFilter{PaymentStatus: ptr("void")})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestExportPayrollRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)
	_, err = f.svc.GeneratePayroll(ctx, janRequest(empRavi))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportPayrollRegister(ctx, payroll.PayrollFilter{}, &buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Payroll Register", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee Code", rows[0][0])
	assert.Equal(t, "Net Pay", rows[0][8])
}

func TestExportPayslip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportPayslip(ctx, rec.ID, &buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Payslip", excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	items := map[string]string{}
	for _, row := range rows[1:] {
		if len(row) == 3 {
			items[row[1]] = row[2]
		}
	}
	assert.True(t, rec.NetPay.Equal(decimal.RequireFromString(items["Net Pay"])))
	assert.True(t, rec.GrossPay.Equal(decimal.RequireFromString(items["Gross Pay"])))
	assert.Contains(t, items, payroll.ComponentBasicSalary)
	assert.Equal(t, "Employee", rows[1][0])

	err = f.svc.ExportPayslip(ctx, "0193a6f2-0000-7000-8000-000000000000", &buf)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestEmployeeScopedRecordAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, err := f.svc.GeneratePayroll(ctx, janRequest(empAsha))
	require.NoError(t, err)

	own, err := f.svc.GetEmployeePayrollRecord(ctx, empAsha, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, own.ID)

	_, err = f.svc.GetEmployeePayrollRecord(ctx, empRavi, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportEmployeePayslip(ctx, empAsha, rec.ID, &buf))
	assert.Positive(t, buf.Len())

	buf.Reset()
	err = f.svc.ExportEmployeePayslip(ctx, empRavi, rec.ID, &buf)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	assert.Zero(t, buf.Len())
}

func TestGetLeaveAllocations(t *testing.T) {
	f := newFixture(t)
	f.store.allocations = []leave.LeaveAllocation{
		{ID: "a1", EmployeeID: empAsha, Year: 2025, LeaveTypeCode: leave.CodePaidTimeOff, IsPaid: true,
			AllocatedDays: d("24"), UsedDays: d("5"), PendingDays: d("2")},
		{ID: "a2", EmployeeID: empAsha, Year: 2024, LeaveTypeCode: leave.CodePaidTimeOff, IsPaid: true,
			AllocatedDays: d("24")},
	}

	// year 0 means the current year
	got, err := f.svc.GetLeaveAllocations(context.Background(), empAsha, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, d("17").Equal(got[0].AvailableDays))

	_, err = f.svc.GetLeaveAllocations(context.Background(), empGone, 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.svc.GetLeaveAllocations(context.Background(), empAsha, 25)
	assert.ErrorIs(t, err, leave.ErrInvalidYear)
}
