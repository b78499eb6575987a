package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/export"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type PayrollServiceImpl struct {
	db                  database.Transactor
	employeeRepo        employee.EmployeeRepository
	componentRepo       payroll.SalaryComponentRepository
	payrollRepo         payroll.PayrollRepository
	leaveRequestRepo    leave.LeaveRequestRepository
	leaveAllocationRepo leave.LeaveAllocationRepository
	attendanceRepo      attendance.AttendanceRepository
	resolver            *ComponentResolver
	calculator          *Calculator
	defaultWorkingDays  int
	logger              *slog.Logger
	now                 func() time.Time
}

func NewPayrollService(
	db database.Transactor,
	employeeRepo employee.EmployeeRepository,
	componentRepo payroll.SalaryComponentRepository,
	payrollRepo payroll.PayrollRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveAllocationRepo leave.LeaveAllocationRepository,
	attendanceRepo attendance.AttendanceRepository,
	resolver *ComponentResolver,
	calculator *Calculator,
	defaultWorkingDays int,
	logger *slog.Logger,
) payroll.PayrollService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{
		db:                  db,
		employeeRepo:        employeeRepo,
		componentRepo:       componentRepo,
		payrollRepo:         payrollRepo,
		leaveRequestRepo:    leaveRequestRepo,
		leaveAllocationRepo: leaveAllocationRepo,
		attendanceRepo:      attendanceRepo,
		resolver:            resolver,
		calculator:          calculator,
		defaultWorkingDays:  defaultWorkingDays,
		logger:              logger,
		now:                 time.Now,
	}
}

// ========== SALARY COMPONENTS ==========

func (s *PayrollServiceImpl) PreviewComponents(ctx context.Context, monthlyWage decimal.Decimal) ([]payroll.SalaryComponentResponse, error) {
	components, err := s.resolver.Resolve(monthlyWage)
	if err != nil {
		return nil, err
	}
	return mapToComponentResponses(components), nil
}

func (s *PayrollServiceImpl) GetSalaryComponents(ctx context.Context, employeeID string) (payroll.EmployeeSalaryComponentsResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return payroll.EmployeeSalaryComponentsResponse{}, invalidID("employee_id")
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	components, err := s.componentRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, fmt.Errorf("failed to get salary components: %w", err)
	}

	return mapToEmployeeComponents(emp, components), nil
}

func (s *PayrollServiceImpl) RegenerateSalaryComponents(ctx context.Context, employeeID string) (payroll.EmployeeSalaryComponentsResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return payroll.EmployeeSalaryComponentsResponse{}, invalidID("employee_id")
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}
	if !emp.HasWage() {
		return payroll.EmployeeSalaryComponentsResponse{}, &payroll.InvalidWageError{EmployeeID: emp.ID}
	}

	components, err := s.resolver.Resolve(*emp.MonthlyWage)
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		return s.replaceComponents(txCtx, emp.ID, components)
	})
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	s.logger.Info("salary components regenerated",
		slog.String("employee_id", emp.ID),
		slog.String("monthly_wage", emp.MonthlyWage.StringFixed(2)),
		slog.Int("components", len(components)),
	)

	return mapToEmployeeComponents(emp, components), nil
}

// UpdateMonthlyWage stores the new wage and replaces the component set in one
// transaction. The previous set is untouched if any step fails.
func (s *PayrollServiceImpl) UpdateMonthlyWage(ctx context.Context, req payroll.UpdateMonthlyWageRequest) (payroll.EmployeeSalaryComponentsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	components, err := s.resolver.Resolve(req.MonthlyWage)
	if err != nil {
		var wageErr *payroll.InvalidWageError
		if errors.As(err, &wageErr) {
			wageErr.EmployeeID = req.EmployeeID
		}
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.UpdateMonthlyWage(txCtx, emp.ID, req.MonthlyWage); err != nil {
			return err
		}
		return s.replaceComponents(txCtx, emp.ID, components)
	})
	if err != nil {
		return payroll.EmployeeSalaryComponentsResponse{}, err
	}

	s.logger.Info("monthly wage updated",
		slog.String("employee_id", emp.ID),
		slog.String("monthly_wage", req.MonthlyWage.StringFixed(2)),
	)

	wage := req.MonthlyWage
	emp.MonthlyWage = &wage
	return mapToEmployeeComponents(emp, components), nil
}

// replaceComponents must run inside a transaction.
func (s *PayrollServiceImpl) replaceComponents(ctx context.Context, employeeID string, components []payroll.SalaryComponent) error {
	if err := s.componentRepo.DeactivateByEmployeeID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to deactivate salary components: %w", err)
	}

	for i := range components {
		components[i].ID = newID()
		components[i].EmployeeID = employeeID
	}

	if err := s.componentRepo.CreateBatch(ctx, components); err != nil {
		return fmt.Errorf("failed to store salary components: %w", err)
	}
	return nil
}

// ========== PAYROLL RECORDS ==========

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.generate(ctx, emp, req)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) generate(ctx context.Context, emp employee.Employee, req payroll.GeneratePayrollRequest) (payroll.PayrollRecord, error) {
	start, end, err := req.Period()
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("%w: %v", payroll.ErrInvalidPeriod, err)
	}

	var wage decimal.Decimal
	switch {
	case req.BaseMonthlySalary != nil && req.BaseMonthlySalary.IsPositive():
		wage = *req.BaseMonthlySalary
	case emp.HasWage():
		wage = *emp.MonthlyWage
	default:
		return payroll.PayrollRecord{}, &payroll.InvalidWageError{EmployeeID: emp.ID}
	}

	var created payroll.PayrollRecord
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.payrollRepo.ExistsForPeriod(txCtx, emp.ID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check existing payroll record: %w", err)
		}
		if exists {
			return &payroll.DuplicatePayrollPeriodError{EmployeeID: emp.ID, Start: start, End: end}
		}

		in, err := s.buildInput(txCtx, emp.ID, wage, start, end, req)
		if err != nil {
			return err
		}

		record, err := s.calculator.Calculate(in)
		if err != nil {
			return err
		}
		record.ID = newID()

		created, err = s.payrollRepo.Create(txCtx, record)
		if err != nil {
			if errors.Is(err, payroll.ErrDuplicatePayrollPeriod) {
				return &payroll.DuplicatePayrollPeriodError{EmployeeID: emp.ID, Start: start, End: end}
			}
			return fmt.Errorf("failed to create payroll record for employee %s: %w", emp.ID, err)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode

	s.logger.Info("payroll generated",
		slog.String("employee_id", emp.ID),
		slog.String("pay_period_start", start.Format(dateLayout)),
		slog.String("pay_period_end", end.Format(dateLayout)),
		slog.String("net_pay", created.NetPay.StringFixed(2)),
	)

	return created, nil
}

// buildInput resolves attendance and leave facts. Values given explicitly in
// the request win over derived ones.
func (s *PayrollServiceImpl) buildInput(ctx context.Context, employeeID string, wage decimal.Decimal, start, end time.Time, req payroll.GeneratePayrollRequest) (payroll.CalculationInput, error) {
	in := payroll.CalculationInput{
		EmployeeID:        employeeID,
		PayPeriodStart:    start,
		PayPeriodEnd:      end,
		BaseMonthlySalary: wage,
		BasicSalary:       req.BasicSalary,
		HRA:               req.HRA,
		StandardAllowance: req.StandardAllowance,
		PerformanceBonus:  req.PerformanceBonus,
		LTA:               req.LTA,
		FixedAllowance:    req.FixedAllowance,
		Allowances:        req.Allowances,
		IncrementAmount:   req.IncrementAmount,
		IncrementPercent:  req.IncrementPercentage,
		SpecialBonus:      req.SpecialBonus,
		FestivalBonus:     req.FestivalBonus,
		OtherEarnings:     req.OtherEarnings,
		PFDeduction:       req.PFDeduction,
		ProfessionalTax:   req.ProfessionalTax,
		Deductions:        req.Deductions,
		TaxDeductions:     req.TaxDeductions,
		OvertimeHours:     req.OvertimeHours,
		OvertimeRate:      req.OvertimeRate,
		Notes:             req.Notes,
	}

	if req.UnpaidLeaveDays == nil || req.PaidLeaveDays == nil {
		requests, err := s.leaveRequestRepo.GetApprovedOverlapping(ctx, employeeID, start, end)
		if err != nil {
			return payroll.CalculationInput{}, fmt.Errorf("failed to get leave requests: %w", err)
		}
		days := ClassifyLeaveDays(requests, start, end)
		in.UnpaidLeaveDays = days.Unpaid
		in.PaidLeaveDays = days.Paid
	}
	if req.UnpaidLeaveDays != nil {
		in.UnpaidLeaveDays = *req.UnpaidLeaveDays
	}
	if req.PaidLeaveDays != nil {
		in.PaidLeaveDays = *req.PaidLeaveDays
	}

	in.TotalWorkingDays = s.defaultWorkingDays
	if req.TotalWorkingDays != nil {
		in.TotalWorkingDays = *req.TotalWorkingDays
	}

	if req.DaysPresent != nil {
		in.DaysPresent = *req.DaysPresent
	} else {
		present, err := s.attendanceRepo.CountPresentDays(ctx, employeeID, start, end)
		if err != nil {
			return payroll.CalculationInput{}, fmt.Errorf("failed to count attendance: %w", err)
		}
		if present == 0 {
			present = in.TotalWorkingDays
		}
		in.DaysPresent = present
	}

	return in, nil
}

// GeneratePayrollBatch generates one record per employee. Employees without a
// wage or with an existing record for the period are skipped; other failures
// are reported per employee and do not stop the batch.
func (s *PayrollServiceImpl) GeneratePayrollBatch(ctx context.Context, req payroll.GeneratePayrollBatchRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	result := payroll.BatchResult{
		PayPeriodStart: req.PayPeriodStart,
		PayPeriodEnd:   req.PayPeriodEnd,
		Generated:      []payroll.PayrollRecordResponse{},
		Skipped:        []payroll.BatchEntry{},
		Failed:         []payroll.BatchEntry{},
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				result.Failed = append(result.Failed, payroll.BatchEntry{EmployeeID: id, Reason: err.Error()})
				continue
			}
			employees = append(employees, emp)
		}
	} else {
		var err error
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return payroll.BatchResult{}, fmt.Errorf("failed to get employees: %w", err)
		}
	}

	for _, emp := range employees {
		if !emp.HasWage() {
			result.Skipped = append(result.Skipped, payroll.BatchEntry{EmployeeID: emp.ID, Reason: "no monthly wage configured"})
			continue
		}

		record, err := s.generate(ctx, emp, payroll.GeneratePayrollRequest{
			EmployeeID:       emp.ID,
			PayPeriodStart:   req.PayPeriodStart,
			PayPeriodEnd:     req.PayPeriodEnd,
			TotalWorkingDays: req.TotalWorkingDays,
		})
		switch {
		case errors.Is(err, payroll.ErrDuplicatePayrollPeriod):
			result.Skipped = append(result.Skipped, payroll.BatchEntry{EmployeeID: emp.ID, Reason: "payroll already exists for period"})
		case err != nil:
			s.logger.Warn("payroll generation failed",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err),
			)
			result.Failed = append(result.Failed, payroll.BatchEntry{EmployeeID: emp.ID, Reason: err.Error()})
		default:
			result.Generated = append(result.Generated, mapToRecordResponse(record))
		}
	}

	s.logger.Info("payroll batch finished",
		slog.String("pay_period_start", req.PayPeriodStart),
		slog.String("pay_period_end", req.PayPeriodEnd),
		slog.Int("generated", len(result.Generated)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.getRecord(ctx, id, "")
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

// GetEmployeePayrollRecord returns the record only when it belongs to employeeID.
func (s *PayrollServiceImpl) GetEmployeePayrollRecord(ctx context.Context, employeeID, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.getRecord(ctx, id, employeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

// getRecord loads a record by id. A non-empty ownerID hides records of other
// employees behind ErrPayrollRecordNotFound.
func (s *PayrollServiceImpl) getRecord(ctx context.Context, id, ownerID string) (payroll.PayrollRecord, error) {
	if !validator.IsValidUUID(id) {
		return payroll.PayrollRecord{}, invalidID("id")
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if ownerID != "" && record.EmployeeID != ownerID {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	return payroll.ListPayrollRecordResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// MarkPaid moves a pending record to paid. The payment date defaults to today.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	paymentDate := dateOnly(s.now())
	if req.PaymentDate != nil {
		paymentDate, _ = validator.IsValidDate(*req.PaymentDate)
	}

	var updated payroll.PayrollRecord
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if record.IsPaid() {
			return payroll.ErrPayrollAlreadyPaid
		}

		if err := s.payrollRepo.MarkPaid(txCtx, req.ID, paymentDate, req.PaidBy); err != nil {
			return err
		}

		updated, err = s.payrollRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	s.logger.Info("payroll marked paid",
		slog.String("payroll_id", req.ID),
		slog.String("payment_date", paymentDate.Format(dateLayout)),
	)

	return mapToRecordResponse(updated), nil
}

var registerColumns = []export.Column{
	{Header: "Employee Code", Width: 16},
	{Header: "Employee Name", Width: 28},
	{Header: "Period Start", Width: 14},
	{Header: "Period End", Width: 14},
	{Header: "Base Salary", Width: 16, Money: true},
	{Header: "Gross Pay", Width: 16, Money: true},
	{Header: "Unpaid Leave Deduction", Width: 22, Money: true},
	{Header: "Total Deductions", Width: 18, Money: true},
	{Header: "Net Pay", Width: 16, Money: true},
	{Header: "Working Days", Width: 14},
	{Header: "Days Present", Width: 14},
	{Header: "Unpaid Leave Days", Width: 18},
	{Header: "Payment Status", Width: 16},
	{Header: "Payment Date", Width: 14},
}

// ExportPayrollRegister writes every record matching filter to w as an XLSX workbook.
func (s *PayrollServiceImpl) ExportPayrollRegister(ctx context.Context, filter payroll.PayrollFilter, w io.Writer) error {
	filter.Page = 1
	filter.Limit = 100
	if err := filter.Validate(); err != nil {
		return err
	}

	sheet, err := export.NewSheet("Payroll Register", registerColumns)
	if err != nil {
		return err
	}
	defer sheet.Close()

	for {
		records, total, err := s.payrollRepo.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, r := range records {
			paymentDate := ""
			if r.PaymentDate != nil {
				paymentDate = r.PaymentDate.Format(dateLayout)
			}
			err := sheet.AddRow(
				deref(r.EmployeeCode),
				deref(r.EmployeeName),
				r.PayPeriodStart.Format(dateLayout),
				r.PayPeriodEnd.Format(dateLayout),
				r.BaseMonthlySalary,
				r.GrossPay,
				r.UnpaidLeaveDeduction,
				r.TotalDeductions,
				r.NetPay,
				r.TotalWorkingDays,
				r.DaysPresent,
				r.UnpaidLeaveDays,
				string(r.PaymentStatus),
				paymentDate,
			)
			if err != nil {
				return err
			}
		}
		if len(records) == 0 || int64(sheet.Rows()) >= total {
			break
		}
		filter.Page++
	}

	return sheet.Write(w)
}

var payslipColumns = []export.Column{
	{Header: "Section", Width: 14},
	{Header: "Item", Width: 40},
	{Header: "Amount", Width: 16, Money: true},
}

// ExportPayslip writes a single record as an itemised XLSX payslip.
func (s *PayrollServiceImpl) ExportPayslip(ctx context.Context, id string, w io.Writer) error {
	r, err := s.getRecord(ctx, id, "")
	if err != nil {
		return err
	}
	return writePayslip(r, w)
}

func (s *PayrollServiceImpl) ExportEmployeePayslip(ctx context.Context, employeeID, id string, w io.Writer) error {
	r, err := s.getRecord(ctx, id, employeeID)
	if err != nil {
		return err
	}
	return writePayslip(r, w)
}

func writePayslip(r payroll.PayrollRecord, w io.Writer) error {
	sheet, err := export.NewSheet("Payslip", payslipColumns)
	if err != nil {
		return err
	}
	defer sheet.Close()

	rows := [][]any{
		{"Employee", strings.TrimSpace(deref(r.EmployeeCode) + " " + deref(r.EmployeeName)), ""},
		{"Period", r.PayPeriodStart.Format(dateLayout) + " to " + r.PayPeriodEnd.Format(dateLayout), ""},
		{"Attendance", fmt.Sprintf("Working days %d, present %d, unpaid leave %d, paid leave %d",
			r.TotalWorkingDays, r.DaysPresent, r.UnpaidLeaveDays, r.PaidLeaveDays), ""},
	}

	earnings := []struct {
		name   string
		amount decimal.Decimal
	}{
		{payroll.ComponentBasicSalary, r.BasicSalary},
		{payroll.ComponentHRA, r.HRA},
		{payroll.ComponentStandardAllowance, r.StandardAllowance},
		{payroll.ComponentPerformanceBonus, r.PerformanceBonus},
		{payroll.ComponentLTA, r.LTA},
		{payroll.ComponentFixedAllowance, r.FixedAllowance},
		{"Allowances", r.Allowances},
		{"Increment", r.IncrementAmount},
		{"Special Bonus", r.SpecialBonus},
		{"Festival Bonus", r.FestivalBonus},
		{"Other Earnings", r.OtherEarnings},
		{"Overtime", r.OvertimePay()},
	}
	for _, e := range earnings {
		if !e.amount.IsZero() {
			rows = append(rows, []any{"Earning", e.name, e.amount})
		}
	}
	rows = append(rows, []any{"Total", "Gross Pay", r.GrossPay})

	deductions := []struct {
		name   string
		amount decimal.Decimal
	}{
		{payroll.ComponentProvidentFund, r.PFDeduction},
		{payroll.ComponentProfessionalTax, r.ProfessionalTax},
		{"Other Deductions", r.Deductions},
		{"Income Tax", r.TaxDeductions},
		{"Unpaid Leave", r.UnpaidLeaveDeduction},
	}
	for _, d := range deductions {
		if !d.amount.IsZero() {
			rows = append(rows, []any{"Deduction", d.name, d.amount})
		}
	}
	rows = append(rows,
		[]any{"Total", "Total Deductions", r.TotalDeductions},
		[]any{"Total", "Net Pay", r.NetPay},
		[]any{"Status", string(r.PaymentStatus), ""},
	)

	for _, row := range rows {
		if err := sheet.AddRow(row...); err != nil {
			return err
		}
	}
	return sheet.Write(w)
}

// ========== LEAVE ==========

func (s *PayrollServiceImpl) GetLeaveAllocations(ctx context.Context, employeeID string, year int) ([]leave.LeaveAllocationResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, invalidID("employee_id")
	}
	switch {
	case year == 0:
		year = s.now().Year()
	case year < 1900 || year > 9999:
		return nil, leave.ErrInvalidYear
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	allocations, err := s.leaveAllocationRepo.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave allocations: %w", err)
	}

	responses := make([]leave.LeaveAllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		responses = append(responses, leave.NewLeaveAllocationResponse(a))
	}
	return responses, nil
}

// ========== MAPPERS ==========

func mapToComponentResponses(components []payroll.SalaryComponent) []payroll.SalaryComponentResponse {
	responses := make([]payroll.SalaryComponentResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, payroll.SalaryComponentResponse{
			ID:             c.ID,
			Name:           c.Name,
			Kind:           string(c.Kind),
			Method:         string(c.Method),
			RateOrAmount:   c.RateOrAmount,
			ComputedAmount: c.ComputedAmount,
			Position:       c.Position,
		})
	}
	return responses
}

func mapToEmployeeComponents(emp employee.Employee, components []payroll.SalaryComponent) payroll.EmployeeSalaryComponentsResponse {
	earnings, deductions := SumComponents(components)
	return payroll.EmployeeSalaryComponentsResponse{
		EmployeeID:      emp.ID,
		MonthlyWage:     emp.MonthlyWage,
		Components:      mapToComponentResponses(components),
		TotalEarnings:   earnings,
		TotalDeductions: deductions,
	}
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paymentDate *string
	if r.PaymentDate != nil {
		d := r.PaymentDate.Format(dateLayout)
		paymentDate = &d
	}

	return payroll.PayrollRecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		EmployeeName:         r.EmployeeName,
		EmployeeCode:         r.EmployeeCode,
		PayPeriodStart:       r.PayPeriodStart.Format(dateLayout),
		PayPeriodEnd:         r.PayPeriodEnd.Format(dateLayout),
		BaseMonthlySalary:    r.BaseMonthlySalary,
		BasicSalary:          r.BasicSalary,
		HRA:                  r.HRA,
		StandardAllowance:    r.StandardAllowance,
		PerformanceBonus:     r.PerformanceBonus,
		LTA:                  r.LTA,
		FixedAllowance:       r.FixedAllowance,
		Allowances:           r.Allowances,
		IncrementAmount:      r.IncrementAmount,
		IncrementPercentage:  r.IncrementPercentage,
		SpecialBonus:         r.SpecialBonus,
		FestivalBonus:        r.FestivalBonus,
		OtherEarnings:        r.OtherEarnings,
		PFDeduction:          r.PFDeduction,
		ProfessionalTax:      r.ProfessionalTax,
		Deductions:           r.Deductions,
		TaxDeductions:        r.TaxDeductions,
		UnpaidLeaveDeduction: r.UnpaidLeaveDeduction,
		TotalWorkingDays:     r.TotalWorkingDays,
		DaysPresent:          r.DaysPresent,
		UnpaidLeaveDays:      r.UnpaidLeaveDays,
		PaidLeaveDays:        r.PaidLeaveDays,
		ActualWorkingDays:    r.ActualWorkingDays(),
		OvertimeHours:        r.OvertimeHours,
		OvertimeRate:         r.OvertimeRate,
		OvertimePay:          r.OvertimePay(),
		GrossPay:             r.GrossPay,
		TotalDeductions:      r.TotalDeductions,
		NetPay:               r.NetPay,
		PaymentStatus:        string(r.PaymentStatus),
		PaymentDate:          paymentDate,
		Notes:                r.Notes,
	}
}

func mapToRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapToRecordResponse(r))
	}
	return responses
}

func invalidID(field string) error {
	return validator.ValidationErrors{{Field: field, Message: "must be a valid UUID"}}
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
