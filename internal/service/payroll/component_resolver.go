package payroll

import (
	"fmt"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// Cent drift the per-component rounding may leave on tiny wages.
	roundingTolerance = decimal.RequireFromString("0.02")
)

// ComponentResolver derives the canonical salary component set from a monthly wage.
type ComponentResolver struct {
	rules payroll.ComponentRules
}

func NewComponentResolver(rules payroll.ComponentRules) *ComponentResolver {
	return &ComponentResolver{rules: rules}
}

func (r *ComponentResolver) Rules() payroll.ComponentRules {
	return r.rules
}

// Resolve returns the ordered component set for monthlyWage. Every amount is
// rounded to cents on its own and the residual is taken from the rounded
// figures, so the earnings add up to the wage exactly unless the residual
// had to be clamped at zero.
func (r *ComponentResolver) Resolve(monthlyWage decimal.Decimal) ([]payroll.SalaryComponent, error) {
	if !monthlyWage.IsPositive() {
		return nil, &payroll.InvalidWageError{Wage: monthlyWage}
	}

	basic := percentOf(monthlyWage, r.rules.BasicPercent)

	components := []payroll.SalaryComponent{
		earning(payroll.ComponentBasicSalary, payroll.MethodPercentOfWage, r.rules.BasicPercent, basic),
		earning(payroll.ComponentHRA, payroll.MethodPercentOfBasic, r.rules.HRAPercentOfBasic,
			percentOf(basic, r.rules.HRAPercentOfBasic)),
		earning(payroll.ComponentPerformanceBonus, payroll.MethodPercentOfWage, r.rules.PerformanceBonusPercent,
			percentOf(monthlyWage, r.rules.PerformanceBonusPercent)),
		earning(payroll.ComponentLTA, payroll.MethodPercentOfWage, r.rules.LTAPercent,
			percentOf(monthlyWage, r.rules.LTAPercent)),
		deduction(payroll.ComponentProvidentFund, payroll.MethodPercentOfBasic, r.rules.PFPercentOfBasic,
			percentOf(basic, r.rules.PFPercentOfBasic)),
		deduction(payroll.ComponentProfessionalTax, payroll.MethodFixed, r.rules.ProfessionalTax,
			r.rules.ProfessionalTax.Round(2)),
	}

	if r.rules.Mode == payroll.AllowanceModeFixed {
		standard := r.rules.StandardAllowanceAmount.Round(2)
		components = append(components,
			earning(payroll.ComponentStandardAllowance, payroll.MethodFixed, standard, standard))
		residual := residualOf(monthlyWage, components)
		components = append(components,
			earning(payroll.ComponentFixedAllowance, payroll.MethodFixed, residual, residual))
	} else {
		residual := residualOf(monthlyWage, components)
		components = append(components,
			earning(payroll.ComponentStandardAllowance, payroll.MethodFixed, residual, residual))
	}

	for i := range components {
		components[i].Position = i + 1
		components[i].IsActive = true
	}

	earnings, _ := SumComponents(components)
	if earnings.Sub(monthlyWage).GreaterThan(roundingTolerance) {
		return nil, fmt.Errorf("%w: earnings %s, wage %s", payroll.ErrComponentConsistency,
			earnings.StringFixed(2), monthlyWage.StringFixed(2))
	}

	return components, nil
}

// SumComponents totals the computed amounts of earnings and deductions.
func SumComponents(components []payroll.SalaryComponent) (earnings, deductions decimal.Decimal) {
	for _, c := range components {
		switch c.Kind {
		case payroll.ComponentKindEarning:
			earnings = earnings.Add(c.ComputedAmount)
		case payroll.ComponentKindDeduction:
			deductions = deductions.Add(c.ComputedAmount)
		}
	}
	return earnings, deductions
}

// residualOf is the wage left after the earnings so far, never below zero.
func residualOf(wage decimal.Decimal, components []payroll.SalaryComponent) decimal.Decimal {
	earnings, _ := SumComponents(components)
	residual := wage.Sub(earnings).Round(2)
	if residual.IsNegative() {
		return decimal.Zero
	}
	return residual
}

// percentOf returns pct percent of base rounded half away from zero to cents.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred).Round(2)
}

func earning(name string, method payroll.ComputationMethod, rate, amount decimal.Decimal) payroll.SalaryComponent {
	return payroll.SalaryComponent{
		Name:           name,
		Kind:           payroll.ComponentKindEarning,
		Method:         method,
		RateOrAmount:   rate,
		ComputedAmount: amount,
	}
}

func deduction(name string, method payroll.ComputationMethod, rate, amount decimal.Decimal) payroll.SalaryComponent {
	return payroll.SalaryComponent{
		Name:           name,
		Kind:           payroll.ComponentKindDeduction,
		Method:         method,
		RateOrAmount:   rate,
		ComputedAmount: amount,
	}
}
