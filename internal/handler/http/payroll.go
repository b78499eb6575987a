package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	// Salary components
	PreviewComponents(w http.ResponseWriter, r *http.Request)
	GetSalaryComponents(w http.ResponseWriter, r *http.Request)
	RegenerateSalaryComponents(w http.ResponseWriter, r *http.Request)
	UpdateMonthlyWage(w http.ResponseWriter, r *http.Request)

	// Leave
	GetLeaveAllocations(w http.ResponseWriter, r *http.Request)

	// Payroll records
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	GeneratePayrollBatch(w http.ResponseWriter, r *http.Request)
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	ExportPayrollRegister(w http.ResponseWriter, r *http.Request)
	ExportPayslip(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)

	// Self-service, scoped to the caller's employee
	GetMySalaryComponents(w http.ResponseWriter, r *http.Request)
	GetMyLeaveAllocations(w http.ResponseWriter, r *http.Request)
	ListMyPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetMyPayrollRecord(w http.ResponseWriter, r *http.Request)
	ExportMyPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SALARY COMPONENTS ==========

func (h *payrollHandlerImpl) PreviewComponents(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("monthly_wage")
	if raw == "" {
		response.ValidationError(w, map[string]string{"monthly_wage": "is required"})
		return
	}
	wage, ok := validator.ParseMoney(raw)
	if !ok {
		response.ValidationError(w, map[string]string{"monthly_wage": "must be a decimal amount"})
		return
	}

	result, err := h.payrollService.PreviewComponents(r.Context(), wage)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetSalaryComponents(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	result, err := h.payrollService.GetSalaryComponents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) RegenerateSalaryComponents(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	result, err := h.payrollService.RegenerateSalaryComponents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary components regenerated", result)
}

func (h *payrollHandlerImpl) UpdateMonthlyWage(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateMonthlyWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeId")

	result, err := h.payrollService.UpdateMonthlyWage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly wage updated", result)
}

// ========== LEAVE ==========

func (h *payrollHandlerImpl) GetLeaveAllocations(w http.ResponseWriter, r *http.Request) {
	h.writeLeaveAllocations(w, r, chi.URLParam(r, "employeeId"))
}

func (h *payrollHandlerImpl) writeLeaveAllocations(w http.ResponseWriter, r *http.Request, employeeID string) {
	var year int
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, ok := validator.ParseYear(yearStr)
		if !ok {
			response.ValidationError(w, map[string]string{"year": "must be a four-digit year"})
			return
		}
		year = y
	}

	result, err := h.payrollService.GetLeaveAllocations(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYROLL RECORDS ==========

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) GeneratePayrollBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayrollBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch processed", result)
}

func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetPayrollRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	filter, ok := parsePayrollFilter(w, r)
	if !ok {
		return
	}
	h.writeRecordList(w, r, filter)
}

func (h *payrollHandlerImpl) writeRecordList(w http.ResponseWriter, r *http.Request, filter payroll.PayrollFilter) {
	result, err := h.payrollService.ListPayrollRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) ExportPayrollRegister(w http.ResponseWriter, r *http.Request) {
	filter, ok := parsePayrollFilter(w, r)
	if !ok {
		return
	}

	// Buffered so that a failure can still produce a JSON error response.
	var buf bytes.Buffer
	if err := h.payrollService.ExportPayrollRegister(r.Context(), filter, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeXLSX(w, "payroll-register.xlsx", &buf)
}

func (h *payrollHandlerImpl) ExportPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.payrollService.ExportPayslip(r.Context(), id, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeXLSX(w, "payslip-"+id+".xlsx", &buf)
}

func writeXLSX(w http.ResponseWriter, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payroll.MarkPaidRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		req.PaidBy = principal.UserID
	}

	result, err := h.payrollService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record marked as paid", result)
}

// ========== SELF-SERVICE ==========

// callerEmployeeID returns the employee linked to the caller's token and
// writes a 403 when there is none.
func callerEmployeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || principal.EmployeeID == "" {
		response.HandleError(w, auth.ErrEmployeeProfileMissing)
		return "", false
	}
	return principal.EmployeeID, true
}

func (h *payrollHandlerImpl) GetMySalaryComponents(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerEmployeeID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetSalaryComponents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetMyLeaveAllocations(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerEmployeeID(w, r)
	if !ok {
		return
	}
	h.writeLeaveAllocations(w, r, employeeID)
}

func (h *payrollHandlerImpl) ListMyPayrollRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerEmployeeID(w, r)
	if !ok {
		return
	}
	filter, ok := parsePayrollFilter(w, r)
	if !ok {
		return
	}

	// the caller's employee always wins over an employee_id query parameter
	filter.EmployeeID = &employeeID
	h.writeRecordList(w, r, filter)
}

func (h *payrollHandlerImpl) GetMyPayrollRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerEmployeeID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetEmployeePayrollRecord(r.Context(), employeeID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportMyPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerEmployeeID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.payrollService.ExportEmployeePayslip(r.Context(), employeeID, id, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeXLSX(w, "payslip-"+id+".xlsx", &buf)
}

func parsePayrollFilter(w http.ResponseWriter, r *http.Request) (payroll.PayrollFilter, bool) {
	query := r.URL.Query()
	var filter payroll.PayrollFilter

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.ValidationError(w, map[string]string{"page": "must be a number"})
			return filter, false
		}
		filter.Page = page
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.ValidationError(w, map[string]string{"limit": "must be a number"})
			return filter, false
		}
		filter.Limit = limit
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if from := query.Get("period_from"); from != "" {
		filter.PeriodFrom = &from
	}
	if to := query.Get("period_to"); to != "" {
		filter.PeriodTo = &to
	}
	if status := query.Get("payment_status"); status != "" {
		filter.PaymentStatus = &status
	}
	filter.SortBy = query.Get("sort_by")
	filter.SortOrder = query.Get("sort_order")

	return filter, true
}
