package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryComponentRepository struct {
	db *database.DB
}

func NewSalaryComponentRepository(db *database.DB) payroll.SalaryComponentRepository {
	return &salaryComponentRepository{db: db}
}

func (r *salaryComponentRepository) DeactivateByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_components
		SET is_active = FALSE, updated_at = NOW()
		WHERE employee_id = $1 AND is_active = TRUE
	`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to deactivate salary components: %w", err)
	}
	return nil
}

// CreateBatch inserts the whole set with one round trip.
func (r *salaryComponentRepository) CreateBatch(ctx context.Context, components []payroll.SalaryComponent) error {
	if len(components) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (
			id, employee_id, name, kind, method, rate_or_amount, computed_amount, position, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for _, c := range components {
		batch.Queue(query, c.ID, c.EmployeeID, c.Name, c.Kind, c.Method, c.RateOrAmount, c.ComputedAmount, c.Position, c.IsActive)
	}

	results := q.SendBatch(ctx, batch)
	for _, c := range components {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert salary component %q: %w", c.Name, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close salary component batch: %w", err)
	}
	return nil
}

func (r *salaryComponentRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, kind, method, rate_or_amount, computed_amount,
			position, is_active, created_at, updated_at
		FROM salary_components
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		var c payroll.SalaryComponent
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Name, &c.Kind, &c.Method, &c.RateOrAmount, &c.ComputedAmount,
			&c.Position, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary components: %w", err)
	}

	return components, nil
}
