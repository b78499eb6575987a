package payroll

import (
	"fmt"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY COMPONENT DTOs ==========

type SalaryComponentResponse struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	Method         string          `json:"method"`
	RateOrAmount   decimal.Decimal `json:"rate_or_amount"`
	ComputedAmount decimal.Decimal `json:"computed_amount"`
	Position       int             `json:"position"`
}

type EmployeeSalaryComponentsResponse struct {
	EmployeeID      string                    `json:"employee_id"`
	MonthlyWage     *decimal.Decimal          `json:"monthly_wage"`
	Components      []SalaryComponentResponse `json:"components"`
	TotalEarnings   decimal.Decimal           `json:"total_earnings"`
	TotalDeductions decimal.Decimal           `json:"total_deductions"`
}

type UpdateMonthlyWageRequest struct {
	EmployeeID  string          `json:"-"`
	MonthlyWage decimal.Decimal `json:"monthly_wage"`
}

func (r *UpdateMonthlyWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	// Non-positive wages are rejected by the resolver as InvalidWageError.
	if r.MonthlyWage.IsPositive() {
		if msg := checkAmount(r.MonthlyWage, MaxAmount); msg != "" {
			errs = append(errs, validator.ValidationError{Field: "monthly_wage", Message: msg})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYROLL RECORD DTOs ==========

// GeneratePayrollRequest is the typed payroll input accepted at the HTTP and CLI boundary.
// Omitted fields are derived from the employee record, leave and attendance.
type GeneratePayrollRequest struct {
	EmployeeID        string           `json:"employee_id"`
	PayPeriodStart    string           `json:"pay_period_start"`
	PayPeriodEnd      string           `json:"pay_period_end"`
	BaseMonthlySalary *decimal.Decimal `json:"base_monthly_salary,omitempty"`

	BasicSalary         *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA                 *decimal.Decimal `json:"hra,omitempty"`
	StandardAllowance   *decimal.Decimal `json:"standard_allowance,omitempty"`
	PerformanceBonus    *decimal.Decimal `json:"performance_bonus,omitempty"`
	LTA                 *decimal.Decimal `json:"lta,omitempty"`
	FixedAllowance      *decimal.Decimal `json:"fixed_allowance,omitempty"`
	Allowances          *decimal.Decimal `json:"allowances,omitempty"`
	IncrementAmount     *decimal.Decimal `json:"increment_amount,omitempty"`
	IncrementPercentage *decimal.Decimal `json:"increment_percentage,omitempty"`
	SpecialBonus        *decimal.Decimal `json:"special_bonus,omitempty"`
	FestivalBonus       *decimal.Decimal `json:"festival_bonus,omitempty"`
	OtherEarnings       *decimal.Decimal `json:"other_earnings,omitempty"`

	PFDeduction     *decimal.Decimal `json:"pf_deduction,omitempty"`
	ProfessionalTax *decimal.Decimal `json:"professional_tax,omitempty"`
	Deductions      *decimal.Decimal `json:"deductions,omitempty"`
	TaxDeductions   *decimal.Decimal `json:"tax_deductions,omitempty"`

	TotalWorkingDays *int `json:"total_working_days,omitempty"`
	DaysPresent      *int `json:"days_present,omitempty"`
	UnpaidLeaveDays  *int `json:"unpaid_leave_days,omitempty"`
	PaidLeaveDays    *int `json:"paid_leave_days,omitempty"`

	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// Validate checks field formats and returns validator.ValidationErrors, or an
// *InvalidPeriodError when both dates parse but the end precedes the start.
func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	errs = append(errs, validatePeriod(r.PayPeriodStart, r.PayPeriodEnd)...)

	for field, v := range map[string]*decimal.Decimal{
		"base_monthly_salary": r.BaseMonthlySalary,
		"basic_salary":        r.BasicSalary,
		"hra":                 r.HRA,
		"standard_allowance":  r.StandardAllowance,
		"performance_bonus":   r.PerformanceBonus,
		"lta":                 r.LTA,
		"fixed_allowance":     r.FixedAllowance,
		"allowances":          r.Allowances,
		"increment_amount":    r.IncrementAmount,
		"special_bonus":       r.SpecialBonus,
		"festival_bonus":      r.FestivalBonus,
		"other_earnings":      r.OtherEarnings,
		"pf_deduction":        r.PFDeduction,
		"professional_tax":    r.ProfessionalTax,
		"deductions":          r.Deductions,
		"tax_deductions":      r.TaxDeductions,
		"overtime_rate":       r.OvertimeRate,
	} {
		if v == nil {
			continue
		}
		if msg := checkAmount(*v, MaxAmount); msg != "" {
			errs = append(errs, validator.ValidationError{Field: field, Message: msg})
		}
	}

	// NUMERIC(6,2) columns
	for field, v := range map[string]*decimal.Decimal{
		"increment_percentage": r.IncrementPercentage,
		"overtime_hours":       r.OvertimeHours,
	} {
		if v == nil {
			continue
		}
		if msg := checkAmount(*v, MaxHours); msg != "" {
			errs = append(errs, validator.ValidationError{Field: field, Message: msg})
		}
	}

	for field, v := range map[string]*int{
		"total_working_days": r.TotalWorkingDays,
		"days_present":       r.DaysPresent,
		"unpaid_leave_days":  r.UnpaidLeaveDays,
		"paid_leave_days":    r.PaidLeaveDays,
	} {
		if v == nil {
			continue
		}
		switch {
		case *v < 0:
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		case *v > MaxDays:
			errs = append(errs, validator.ValidationError{Field: field, Message: fmt.Sprintf("must not exceed %d", MaxDays)})
		}
	}

	if len(errs) > 0 {
		validator.SortByField(errs)
		return errs
	}

	start, end, _ := r.Period()
	if end.Before(start) {
		return &InvalidPeriodError{Start: start, End: end}
	}
	return nil
}

// Period parses the pay period boundaries.
func (r *GeneratePayrollRequest) Period() (time.Time, time.Time, error) {
	return parsePeriod(r.PayPeriodStart, r.PayPeriodEnd)
}

type GeneratePayrollBatchRequest struct {
	PayPeriodStart   string   `json:"pay_period_start"`
	PayPeriodEnd     string   `json:"pay_period_end"`
	TotalWorkingDays *int     `json:"total_working_days,omitempty"`
	EmployeeIDs      []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *GeneratePayrollBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePeriod(r.PayPeriodStart, r.PayPeriodEnd)...)
	if r.TotalWorkingDays != nil && (*r.TotalWorkingDays < 0 || *r.TotalWorkingDays > MaxDays) {
		errs = append(errs, validator.ValidationError{Field: "total_working_days", Message: fmt.Sprintf("must be between 0 and %d", MaxDays)})
	}
	for _, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must contain valid UUIDs"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	start, end, _ := r.Period()
	if end.Before(start) {
		return &InvalidPeriodError{Start: start, End: end}
	}
	return nil
}

func (r *GeneratePayrollBatchRequest) Period() (time.Time, time.Time, error) {
	return parsePeriod(r.PayPeriodStart, r.PayPeriodEnd)
}

type BatchEntry struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type BatchResult struct {
	PayPeriodStart string                  `json:"pay_period_start"`
	PayPeriodEnd   string                  `json:"pay_period_end"`
	Generated      []PayrollRecordResponse `json:"generated"`
	Skipped        []BatchEntry            `json:"skipped"`
	Failed         []BatchEntry            `json:"failed"`
}

type MarkPaidRequest struct {
	ID          string  `json:"-"`
	PaidBy      string  `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"` // defaults to today
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         *string         `json:"employee_name,omitempty"`
	EmployeeCode         *string         `json:"employee_code,omitempty"`
	PayPeriodStart       string          `json:"pay_period_start"`
	PayPeriodEnd         string          `json:"pay_period_end"`
	BaseMonthlySalary    decimal.Decimal `json:"base_monthly_salary"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	HRA                  decimal.Decimal `json:"hra"`
	StandardAllowance    decimal.Decimal `json:"standard_allowance"`
	PerformanceBonus     decimal.Decimal `json:"performance_bonus"`
	LTA                  decimal.Decimal `json:"lta"`
	FixedAllowance       decimal.Decimal `json:"fixed_allowance"`
	Allowances           decimal.Decimal `json:"allowances"`
	IncrementAmount      decimal.Decimal `json:"increment_amount"`
	IncrementPercentage  decimal.Decimal `json:"increment_percentage"`
	SpecialBonus         decimal.Decimal `json:"special_bonus"`
	FestivalBonus        decimal.Decimal `json:"festival_bonus"`
	OtherEarnings        decimal.Decimal `json:"other_earnings"`
	PFDeduction          decimal.Decimal `json:"pf_deduction"`
	ProfessionalTax      decimal.Decimal `json:"professional_tax"`
	Deductions           decimal.Decimal `json:"deductions"`
	TaxDeductions        decimal.Decimal `json:"tax_deductions"`
	UnpaidLeaveDeduction decimal.Decimal `json:"unpaid_leave_deduction"`
	TotalWorkingDays     int             `json:"total_working_days"`
	DaysPresent          int             `json:"days_present"`
	UnpaidLeaveDays      int             `json:"unpaid_leave_days"`
	PaidLeaveDays        int             `json:"paid_leave_days"`
	ActualWorkingDays    int             `json:"actual_working_days"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimeRate         decimal.Decimal `json:"overtime_rate"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
	PaymentStatus        string          `json:"payment_status"`
	PaymentDate          *string         `json:"payment_date,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
}

type PayrollFilter struct {
	EmployeeID    *string `json:"employee_id,omitempty"`
	PeriodFrom    *string `json:"period_from,omitempty"` // records starting on or after
	PeriodTo      *string `json:"period_to,omitempty"`   // records ending on or before
	PaymentStatus *string `json:"payment_status,omitempty"`
	Page          int     `json:"page"`
	Limit         int     `json:"limit"`
	SortBy        string  `json:"sort_by"`
	SortOrder     string  `json:"sort_order"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if f.PeriodFrom != nil {
		if _, ok := validator.IsValidDate(*f.PeriodFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_from", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.PeriodTo != nil {
		if _, ok := validator.IsValidDate(*f.PeriodTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_to", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.PaymentStatus != nil &&
		*f.PaymentStatus != string(PaymentStatusPending) && *f.PaymentStatus != string(PaymentStatusPaid) {
		errs = append(errs, validator.ValidationError{Field: "payment_status", Message: "must be 'pending' or 'paid'"})
	}
	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"pay_period_start", "net_pay", "gross_pay", "created_at"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "is not a sortable column"})
	}
	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "must be 'asc' or 'desc'"})
	}

	if len(errs) > 0 {
		return errs
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.SortBy == "" {
		f.SortBy = "pay_period_start"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
	return nil
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// Upper bounds of the payroll_records columns.
var (
	MaxAmount = decimal.RequireFromString("9999999999.99") // NUMERIC(12,2)
	MaxHours  = decimal.RequireFromString("9999.99")       // NUMERIC(6,2)
)

const MaxDays = 366

// checkAmount returns a validation message when v is negative, finer than a
// cent or above limit, and "" otherwise.
func checkAmount(v, limit decimal.Decimal) string {
	switch {
	case v.IsNegative():
		return "must be non-negative"
	case !v.Equal(v.Round(2)):
		return "must have at most 2 decimal places"
	case v.GreaterThan(limit):
		return "must not exceed " + limit.StringFixed(2)
	}
	return ""
}

func validatePeriod(start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if start == "" {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "is required"})
	} else if _, ok := validator.IsValidDate(start); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be in YYYY-MM-DD format"})
	}
	if end == "" {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "is required"})
	} else if _, ok := validator.IsValidDate(end); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be in YYYY-MM-DD format"})
	}
	return errs
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
