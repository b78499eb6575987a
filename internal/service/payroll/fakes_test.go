package payroll

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the database. memTx snapshots it on
// entry and restores the snapshot when the unit of work fails.
type memStore struct {
	mu sync.Mutex

	employees     map[string]employee.Employee
	components    []payroll.SalaryComponent
	records       map[string]payroll.PayrollRecord
	leaveRequests []leave.LeaveRequest
	allocations   []leave.LeaveAllocation
	presentDays   map[string]int

	// failure injection
	failCreateComponents error
	hideExisting         bool // ExistsForPeriod always reports false

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		employees:   map[string]employee.Employee{},
		records:     map[string]payroll.PayrollRecord{},
		presentDays: map[string]int{},
	}
}

type snapshot struct {
	employees  map[string]employee.Employee
	components []payroll.SalaryComponent
	records    map[string]payroll.PayrollRecord
}

func (m *memStore) snapshot() snapshot {
	s := snapshot{
		employees:  make(map[string]employee.Employee, len(m.employees)),
		components: append([]payroll.SalaryComponent(nil), m.components...),
		records:    make(map[string]payroll.PayrollRecord, len(m.records)),
	}
	for k, v := range m.employees {
		s.employees[k] = v
	}
	for k, v := range m.records {
		s.records[k] = v
	}
	return s
}

func (m *memStore) restore(s snapshot) {
	m.employees = s.employees
	m.components = s.components
	m.records = s.records
}

type memTx struct{ store *memStore }

func (t memTx) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.store.mu.Lock()
	snap := t.store.snapshot()
	t.store.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.store.mu.Lock()
		t.store.restore(snap)
		t.store.rollbacks++
		t.store.mu.Unlock()
		return err
	}

	t.store.mu.Lock()
	t.store.commits++
	t.store.mu.Unlock()
	return nil
}

// ---- employees ----

type memEmployeeRepo struct{ store *memStore }

func (r memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r memEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []employee.Employee
	for _, e := range r.store.employees {
		if e.EmploymentStatus == employee.EmploymentStatusActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeCode < out[j].EmployeeCode })
	return out, nil
}

func (r memEmployeeRepo) UpdateMonthlyWage(ctx context.Context, id string, wage decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.MonthlyWage = &wage
	r.store.employees[id] = emp
	return nil
}

// ---- salary components ----

type memComponentRepo struct{ store *memStore }

func (r memComponentRepo) DeactivateByEmployeeID(ctx context.Context, employeeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.components {
		if r.store.components[i].EmployeeID == employeeID {
			r.store.components[i].IsActive = false
		}
	}
	return nil
}

func (r memComponentRepo) CreateBatch(ctx context.Context, components []payroll.SalaryComponent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failCreateComponents != nil {
		return r.store.failCreateComponents
	}
	r.store.components = append(r.store.components, components...)
	return nil
}

func (r memComponentRepo) GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []payroll.SalaryComponent
	for _, c := range r.store.components {
		if c.EmployeeID == employeeID && c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// ---- payroll records ----

type memPayrollRepo struct{ store *memStore }

func (r memPayrollRepo) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.records {
		if existing.EmployeeID == record.EmployeeID &&
			existing.PayPeriodStart.Equal(record.PayPeriodStart) &&
			existing.PayPeriodEnd.Equal(record.PayPeriodEnd) {
			return payroll.PayrollRecord{}, payroll.ErrDuplicatePayrollPeriod
		}
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.store.records[record.ID] = record
	return record, nil
}

func (r memPayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (r memPayrollRepo) ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.hideExisting {
		return false, nil
	}
	for _, rec := range r.store.records {
		if rec.EmployeeID == employeeID && rec.PayPeriodStart.Equal(start) && rec.PayPeriodEnd.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r memPayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var all []payroll.PayrollRecord
	for _, rec := range r.store.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PaymentStatus != nil && string(rec.PaymentStatus) != *filter.PaymentStatus {
			continue
		}
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	from := (filter.Page - 1) * filter.Limit
	if from >= len(all) {
		return nil, total, nil
	}
	to := from + filter.Limit
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], total, nil
}

func (r memPayrollRepo) MarkPaid(ctx context.Context, id string, paymentDate time.Time, paidBy string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.records[id]
	if !ok || rec.IsPaid() {
		return payroll.ErrPayrollAlreadyPaid
	}
	rec.PaymentStatus = payroll.PaymentStatusPaid
	rec.PaymentDate = &paymentDate
	if paidBy != "" {
		rec.PaidBy = &paidBy
	}
	r.store.records[id] = rec
	return nil
}

// ---- leave & attendance ----

type memLeaveRequestRepo struct{ store *memStore }

func (r memLeaveRequestRepo) GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []leave.LeaveRequest
	for _, lr := range r.store.leaveRequests {
		if lr.EmployeeID != employeeID || !lr.IsApproved() {
			continue
		}
		if lr.EndDate.Before(start) || lr.StartDate.After(end) {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

type memLeaveAllocationRepo struct{ store *memStore }

func (r memLeaveAllocationRepo) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveAllocation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []leave.LeaveAllocation
	for _, a := range r.store.allocations {
		if a.EmployeeID == employeeID && a.Year == year {
			out = append(out, a)
		}
	}
	return out, nil
}

type memAttendanceRepo struct {
	store *memStore
	err   error
}

func (r memAttendanceRepo) CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.presentDays[employeeID], nil
}

var errBoom = errors.New("boom")
