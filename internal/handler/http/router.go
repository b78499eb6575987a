package http

import (
	"log/slog"

	"github.com/dayflow-hrms/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the ambient settings of the HTTP surface.
type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, payrollHandler PayrollHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/salary-components/preview", payrollHandler.PreviewComponents)

			r.Route("/my", func(r chi.Router) {
				r.Get("/salary-components", payrollHandler.GetMySalaryComponents)
				r.Get("/leave-allocations", payrollHandler.GetMyLeaveAllocations)
				r.Get("/payroll", payrollHandler.ListMyPayrollRecords)
				r.Get("/payroll/{id}", payrollHandler.GetMyPayrollRecord)
				r.Get("/payroll/{id}/payslip", payrollHandler.ExportMyPayslip)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees/{employeeId}", func(r chi.Router) {
					r.Get("/salary-components", payrollHandler.GetSalaryComponents)
					r.Get("/leave-allocations", payrollHandler.GetLeaveAllocations)
					r.Post("/salary-components/regenerate", payrollHandler.RegenerateSalaryComponents)
					r.Put("/monthly-wage", payrollHandler.UpdateMonthlyWage)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayrollRecords)
					r.Post("/", payrollHandler.GeneratePayroll)
					r.Post("/batch", payrollHandler.GeneratePayrollBatch)
					r.Get("/export", payrollHandler.ExportPayrollRegister)
					r.Get("/{id}", payrollHandler.GetPayrollRecord)
					r.Get("/{id}/payslip", payrollHandler.ExportPayslip)
					r.Post("/{id}/mark-paid", payrollHandler.MarkPaid)
				})
			})
		})
	})
	return r
}
