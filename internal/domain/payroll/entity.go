package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentKind enum
type ComponentKind string

const (
	ComponentKindEarning   ComponentKind = "earning"
	ComponentKindDeduction ComponentKind = "deduction"
)

// ComputationMethod enum
type ComputationMethod string

const (
	MethodFixed          ComputationMethod = "fixed"
	MethodPercentOfWage  ComputationMethod = "percent_of_wage"
	MethodPercentOfBasic ComputationMethod = "percent_of_basic"
)

// Canonical component names, in evaluation order.
const (
	ComponentBasicSalary       = "Basic Salary"
	ComponentHRA               = "House Rent Allowance"
	ComponentPerformanceBonus  = "Performance Bonus"
	ComponentLTA               = "Leave Travel Allowance"
	ComponentProvidentFund     = "Provident Fund"
	ComponentProfessionalTax   = "Professional Tax"
	ComponentStandardAllowance = "Standard Allowance"
	ComponentFixedAllowance    = "Fixed Allowance"
)

// SalaryComponent - One earning or deduction line derived from the monthly wage
type SalaryComponent struct {
	ID             string
	EmployeeID     string
	Name           string
	Kind           ComponentKind
	Method         ComputationMethod
	RateOrAmount   decimal.Decimal // percentage for percent_* methods, amount for fixed
	ComputedAmount decimal.Decimal
	Position       int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AllowanceMode selects how the residual component is produced.
type AllowanceMode string

const (
	// AllowanceModeAuto makes Standard Allowance the residual.
	AllowanceModeAuto AllowanceMode = "auto"
	// AllowanceModeFixed pins Standard Allowance and makes Fixed Allowance the residual.
	AllowanceModeFixed AllowanceMode = "fixed"
)

// ComponentRules holds the rates used to resolve a wage into components.
// Percentages are expressed in percent (50 means 50%).
type ComponentRules struct {
	BasicPercent            decimal.Decimal
	HRAPercentOfBasic       decimal.Decimal
	PerformanceBonusPercent decimal.Decimal
	LTAPercent              decimal.Decimal
	PFPercentOfBasic        decimal.Decimal
	ProfessionalTax         decimal.Decimal
	Mode                    AllowanceMode
	StandardAllowanceAmount decimal.Decimal
}

// DefaultComponentRules returns the stock rates with auto-balancing allowance.
func DefaultComponentRules() ComponentRules {
	return ComponentRules{
		BasicPercent:            decimal.NewFromInt(50),
		HRAPercentOfBasic:       decimal.NewFromInt(50),
		PerformanceBonusPercent: decimal.RequireFromString("8.33"),
		LTAPercent:              decimal.RequireFromString("8.33"),
		PFPercentOfBasic:        decimal.NewFromInt(12),
		ProfessionalTax:         decimal.NewFromInt(200),
		Mode:                    AllowanceModeAuto,
		StandardAllowanceAmount: decimal.RequireFromString("4167.00"),
	}
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PayrollRecord - Generated payroll for one employee and pay period
type PayrollRecord struct {
	ID             string
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time

	BaseMonthlySalary decimal.Decimal

	// Earnings
	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	StandardAllowance   decimal.Decimal
	PerformanceBonus    decimal.Decimal
	LTA                 decimal.Decimal
	FixedAllowance      decimal.Decimal
	Allowances          decimal.Decimal
	IncrementAmount     decimal.Decimal
	IncrementPercentage decimal.Decimal // informational, not part of gross
	SpecialBonus        decimal.Decimal
	FestivalBonus       decimal.Decimal
	OtherEarnings       decimal.Decimal

	// Deductions
	PFDeduction          decimal.Decimal
	ProfessionalTax      decimal.Decimal
	Deductions           decimal.Decimal
	TaxDeductions        decimal.Decimal
	UnpaidLeaveDeduction decimal.Decimal

	// Attendance
	TotalWorkingDays int
	DaysPresent      int
	UnpaidLeaveDays  int
	PaidLeaveDays    int

	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal

	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	PaymentStatus PaymentStatus
	PaymentDate   *time.Time
	PaidBy        *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// OvertimePay returns OvertimeHours × OvertimeRate rounded to cents.
func (p PayrollRecord) OvertimePay() decimal.Decimal {
	return p.OvertimeHours.Mul(p.OvertimeRate).Round(2)
}

// TotalEarnings is the same figure as GrossPay.
func (p PayrollRecord) TotalEarnings() decimal.Decimal {
	return p.GrossPay
}

func (p PayrollRecord) ActualWorkingDays() int {
	return p.DaysPresent - p.UnpaidLeaveDays
}

func (p PayrollRecord) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

// CalculationInput is the fully typed input of the payroll calculator.
// Nil pointer fields fall back to the calculator defaults.
type CalculationInput struct {
	EmployeeID        string
	PayPeriodStart    time.Time
	PayPeriodEnd      time.Time
	BaseMonthlySalary decimal.Decimal

	BasicSalary       *decimal.Decimal
	HRA               *decimal.Decimal
	StandardAllowance *decimal.Decimal
	PerformanceBonus  *decimal.Decimal
	LTA               *decimal.Decimal
	FixedAllowance    *decimal.Decimal
	Allowances        *decimal.Decimal
	IncrementAmount   *decimal.Decimal
	IncrementPercent  *decimal.Decimal
	SpecialBonus      *decimal.Decimal
	FestivalBonus     *decimal.Decimal
	OtherEarnings     *decimal.Decimal

	PFDeduction     *decimal.Decimal
	ProfessionalTax *decimal.Decimal
	Deductions      *decimal.Decimal
	TaxDeductions   *decimal.Decimal

	TotalWorkingDays int
	DaysPresent      int
	UnpaidLeaveDays  int
	PaidLeaveDays    int

	OvertimeHours *decimal.Decimal
	OvertimeRate  *decimal.Decimal

	Notes *string
}
