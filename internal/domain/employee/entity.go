package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            *string
	Department       *string
	JobPosition      *string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	MonthlyWage      *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// HasWage reports whether the employee carries a usable wage basis.
func (e Employee) HasWage() bool {
	return e.MonthlyWage != nil && e.MonthlyWage.IsPositive()
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
