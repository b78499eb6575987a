package payroll

import (
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	half       = decimal.RequireFromString("0.5")
	pfFraction = decimal.RequireFromString("0.12")
)

// Calculator turns a CalculationInput into a payroll record. It holds no state
// besides the configured professional tax default.
type Calculator struct {
	professionalTax decimal.Decimal
}

func NewCalculator(professionalTax decimal.Decimal) *Calculator {
	return &Calculator{professionalTax: professionalTax.Round(2)}
}

// Calculate fills defaults and derives gross pay, the unpaid leave
// deduction, total deductions and net pay, in that order. Every stored
// amount is rounded to cents before it is summed, so the totals match the
// persisted columns exactly.
func (c *Calculator) Calculate(in payroll.CalculationInput) (payroll.PayrollRecord, error) {
	if in.PayPeriodEnd.Before(in.PayPeriodStart) {
		return payroll.PayrollRecord{}, &payroll.InvalidPeriodError{Start: in.PayPeriodStart, End: in.PayPeriodEnd}
	}
	if !in.BaseMonthlySalary.IsPositive() {
		return payroll.PayrollRecord{}, &payroll.InvalidWageError{EmployeeID: in.EmployeeID, Wage: in.BaseMonthlySalary}
	}

	base := in.BaseMonthlySalary.Round(2)
	basic := valueOr(in.BasicSalary, base.Mul(half))

	rec := payroll.PayrollRecord{
		EmployeeID:        in.EmployeeID,
		PayPeriodStart:    in.PayPeriodStart,
		PayPeriodEnd:      in.PayPeriodEnd,
		BaseMonthlySalary: base,

		BasicSalary:         basic,
		HRA:                 valueOr(in.HRA, basic.Mul(half)),
		StandardAllowance:   valueOr(in.StandardAllowance, decimal.Zero),
		PerformanceBonus:    valueOr(in.PerformanceBonus, decimal.Zero),
		LTA:                 valueOr(in.LTA, decimal.Zero),
		FixedAllowance:      valueOr(in.FixedAllowance, decimal.Zero),
		Allowances:          valueOr(in.Allowances, decimal.Zero),
		IncrementAmount:     valueOr(in.IncrementAmount, decimal.Zero),
		IncrementPercentage: valueOr(in.IncrementPercent, decimal.Zero),
		SpecialBonus:        valueOr(in.SpecialBonus, decimal.Zero),
		FestivalBonus:       valueOr(in.FestivalBonus, decimal.Zero),
		OtherEarnings:       valueOr(in.OtherEarnings, decimal.Zero),

		PFDeduction:     valueOr(in.PFDeduction, basic.Mul(pfFraction)),
		ProfessionalTax: valueOr(in.ProfessionalTax, c.professionalTax),
		Deductions:      valueOr(in.Deductions, decimal.Zero),
		TaxDeductions:   valueOr(in.TaxDeductions, decimal.Zero),

		TotalWorkingDays: in.TotalWorkingDays,
		DaysPresent:      in.DaysPresent,
		UnpaidLeaveDays:  in.UnpaidLeaveDays,
		PaidLeaveDays:    in.PaidLeaveDays,

		OvertimeHours: valueOr(in.OvertimeHours, decimal.Zero),
		OvertimeRate:  valueOr(in.OvertimeRate, decimal.Zero),

		PaymentStatus: payroll.PaymentStatusPending,
		Notes:         in.Notes,
	}

	// 1. gross
	rec.GrossPay = decimal.Sum(
		rec.BasicSalary,
		rec.HRA,
		rec.StandardAllowance,
		rec.PerformanceBonus,
		rec.LTA,
		rec.FixedAllowance,
		rec.Allowances,
		rec.IncrementAmount,
		rec.SpecialBonus,
		rec.FestivalBonus,
		rec.OtherEarnings,
		rec.OvertimePay(),
	)

	// 2. unpaid leave
	rec.UnpaidLeaveDeduction = UnpaidLeaveDeduction(base, rec.TotalWorkingDays, rec.UnpaidLeaveDays)

	// 3. deductions
	rec.TotalDeductions = decimal.Sum(
		rec.PFDeduction,
		rec.ProfessionalTax,
		rec.Deductions,
		rec.TaxDeductions,
		rec.UnpaidLeaveDeduction,
	)

	// 4. net
	rec.NetPay = rec.GrossPay.Sub(rec.TotalDeductions)

	if rec.GrossPay.GreaterThan(payroll.MaxAmount) || rec.TotalDeductions.GreaterThan(payroll.MaxAmount) {
		return payroll.PayrollRecord{}, validator.ValidationErrors{
			{Field: "gross_pay", Message: "totals must not exceed " + payroll.MaxAmount.StringFixed(2)},
		}
	}

	return rec, nil
}

// UnpaidLeaveDeduction prorates base over the working days and charges the
// unpaid days. It is zero unless both day counts are positive.
func UnpaidLeaveDeduction(base decimal.Decimal, totalWorkingDays, unpaidLeaveDays int) decimal.Decimal {
	if totalWorkingDays <= 0 || unpaidLeaveDays <= 0 {
		return decimal.Zero
	}
	perDay := base.Div(decimal.NewFromInt(int64(totalWorkingDays)))
	return perDay.Mul(decimal.NewFromInt(int64(unpaidLeaveDays))).Round(2)
}

// valueOr returns v, or fallback when v is nil, rounded to cents.
func valueOr(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v != nil {
		return v.Round(2)
	}
	return fallback.Round(2)
}
