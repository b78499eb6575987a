package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payrollPeriodConstraint = "uk_payroll_employee_period"

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRecordColumns = `
	pr.id, pr.employee_id, pr.pay_period_start, pr.pay_period_end, pr.base_monthly_salary,
	pr.basic_salary, pr.hra, pr.standard_allowance, pr.performance_bonus, pr.lta, pr.fixed_allowance,
	pr.allowances, pr.increment_amount, pr.increment_percentage, pr.special_bonus, pr.festival_bonus,
	pr.other_earnings, pr.pf_deduction, pr.professional_tax, pr.deductions, pr.tax_deductions,
	pr.unpaid_leave_deduction, pr.total_working_days, pr.days_present, pr.unpaid_leave_days,
	pr.paid_leave_days, pr.overtime_hours, pr.overtime_rate, pr.gross_pay, pr.total_deductions,
	pr.net_pay, pr.payment_status, pr.payment_date, pr.paid_by, pr.notes, pr.created_at, pr.updated_at,
	e.full_name, e.employee_code`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PayPeriodStart, &rec.PayPeriodEnd, &rec.BaseMonthlySalary,
		&rec.BasicSalary, &rec.HRA, &rec.StandardAllowance, &rec.PerformanceBonus, &rec.LTA, &rec.FixedAllowance,
		&rec.Allowances, &rec.IncrementAmount, &rec.IncrementPercentage, &rec.SpecialBonus, &rec.FestivalBonus,
		&rec.OtherEarnings, &rec.PFDeduction, &rec.ProfessionalTax, &rec.Deductions, &rec.TaxDeductions,
		&rec.UnpaidLeaveDeduction, &rec.TotalWorkingDays, &rec.DaysPresent, &rec.UnpaidLeaveDays,
		&rec.PaidLeaveDays, &rec.OvertimeHours, &rec.OvertimeRate, &rec.GrossPay, &rec.TotalDeductions,
		&rec.NetPay, &rec.PaymentStatus, &rec.PaymentDate, &rec.PaidBy, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, pay_period_start, pay_period_end, base_monthly_salary,
			basic_salary, hra, standard_allowance, performance_bonus, lta, fixed_allowance,
			allowances, increment_amount, increment_percentage, special_bonus, festival_bonus,
			other_earnings, pf_deduction, professional_tax, deductions, tax_deductions,
			unpaid_leave_deduction, total_working_days, days_present, unpaid_leave_days,
			paid_leave_days, overtime_hours, overtime_rate, gross_pay, total_deductions,
			net_pay, payment_status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33
		)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd, record.BaseMonthlySalary,
		record.BasicSalary, record.HRA, record.StandardAllowance, record.PerformanceBonus, record.LTA, record.FixedAllowance,
		record.Allowances, record.IncrementAmount, record.IncrementPercentage, record.SpecialBonus, record.FestivalBonus,
		record.OtherEarnings, record.PFDeduction, record.ProfessionalTax, record.Deductions, record.TaxDeductions,
		record.UnpaidLeaveDeduction, record.TotalWorkingDays, record.DaysPresent, record.UnpaidLeaveDays,
		record.PaidLeaveDays, record.OvertimeHours, record.OvertimeRate, record.GrossPay, record.TotalDeductions,
		record.NetPay, record.PaymentStatus, record.Notes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, payrollPeriodConstraint) {
			return payroll.PayrollRecord{}, payroll.ErrDuplicatePayrollPeriod
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND pay_period_start = $2 AND pay_period_end = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return exists, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodFrom != nil {
		from, err := time.Parse("2006-01-02", *filter.PeriodFrom)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid period_from: %w", err)
		}
		baseQuery += fmt.Sprintf(" AND pr.pay_period_start >= $%d", argIdx)
		args = append(args, from)
		argIdx++
	}
	if filter.PeriodTo != nil {
		to, err := time.Parse("2006-01-02", *filter.PeriodTo)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid period_to: %w", err)
		}
		baseQuery += fmt.Sprintf(" AND pr.pay_period_end <= $%d", argIdx)
		args = append(args, to)
		argIdx++
	}
	if filter.PaymentStatus != nil {
		baseQuery += fmt.Sprintf(" AND pr.payment_status = $%d", argIdx)
		args = append(args, *filter.PaymentStatus)
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Sort
	sortColumn := "pr.pay_period_start"
	allowedColumns := map[string]string{
		"pay_period_start": "pr.pay_period_start",
		"net_pay":          "pr.net_pay",
		"gross_pay":        "pr.gross_pay",
		"created_at":       "pr.created_at",
	}
	if col, ok := allowedColumns[filter.SortBy]; ok {
		sortColumn = col
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s
		%s
		ORDER BY %s %s, e.employee_code ASC
		LIMIT $%d OFFSET $%d
	`, payrollRecordColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, totalCount, nil
}

// MarkPaid transitions a pending record. It returns ErrPayrollAlreadyPaid when
// no pending record with that id exists.
func (r *payrollRepository) MarkPaid(ctx context.Context, id string, paymentDate time.Time, paidBy string) error {
	q := GetQuerier(ctx, r.db)

	var paidByArg interface{}
	if paidBy != "" {
		paidByArg = paidBy
	}

	query := `
		UPDATE payroll_records
		SET payment_status = $1, payment_date = $2, paid_by = $3, updated_at = NOW()
		WHERE id = $4 AND payment_status = $5
	`

	tag, err := q.Exec(ctx, query, payroll.PaymentStatusPaid, paymentDate, paidByArg, id, payroll.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark payroll record %s paid: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollAlreadyPaid
	}
	return nil
}
