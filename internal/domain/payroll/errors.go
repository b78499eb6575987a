package payroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWage            = errors.New("invalid wage basis")
	ErrInvalidPeriod          = errors.New("invalid payroll period")
	ErrDuplicatePayrollPeriod = errors.New("payroll record already exists for this period")
	ErrComponentConsistency   = errors.New("salary components exceed the monthly wage")
	ErrPayrollRecordNotFound  = errors.New("payroll record not found")
	ErrPayrollAlreadyPaid     = errors.New("payroll record already paid")
)

// InvalidWageError reports a missing or non-positive wage basis.
type InvalidWageError struct {
	EmployeeID string
	Wage       decimal.Decimal
}

func (e *InvalidWageError) Error() string {
	if e.EmployeeID == "" {
		return fmt.Sprintf("%s: %s must be greater than zero", ErrInvalidWage, e.Wage.StringFixed(2))
	}
	return fmt.Sprintf("%s: employee %s has no positive monthly wage", ErrInvalidWage, e.EmployeeID)
}

func (e *InvalidWageError) Unwrap() error { return ErrInvalidWage }

// InvalidPeriodError reports a pay period whose end precedes its start.
type InvalidPeriodError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("%s: end %s is before start %s", ErrInvalidPeriod,
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

// DuplicatePayrollPeriodError reports an existing record for the same employee and period.
type DuplicatePayrollPeriodError struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
}

func (e *DuplicatePayrollPeriodError) Error() string {
	return fmt.Sprintf("%s: employee %s, %s to %s", ErrDuplicatePayrollPeriod, e.EmployeeID,
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

func (e *DuplicatePayrollPeriodError) Unwrap() error { return ErrDuplicatePayrollPeriod }
