package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/dayflow-hrms/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hrms/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hrms/hrms-backend-go/internal/repository/postgresql"
	payrollService "github.com/dayflow-hrms/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.SlogLevel(), "dayflow-hrms", cfg.App.Version, cfg.App.Env)
	slog.SetDefault(log)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	componentRepo := postgresql.NewSalaryComponentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveAllocationRepo := postgresql.NewLeaveAllocationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payrollSvc := payrollService.NewPayrollService(
		postgresql.NewTransactor(db),
		employeeRepo,
		componentRepo,
		payrollRepo,
		leaveRequestRepo,
		leaveAllocationRepo,
		attendanceRepo,
		payrollService.NewComponentResolver(payrollService.RulesFromConfig(cfg.Payroll)),
		payrollService.NewCalculator(cfg.Payroll.ProfessionalTax),
		cfg.Payroll.DefaultWorkingDays,
		log,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, appHTTP.RouterOptions{
		Logger:         log,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: strings.Split(cfg.App.FrontendURL, ","),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info("server starting", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
