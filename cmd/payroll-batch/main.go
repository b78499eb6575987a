package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dayflow-hrms/hrms-backend-go/internal/config"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hrms/hrms-backend-go/internal/repository/postgresql"
	payrollService "github.com/dayflow-hrms/hrms-backend-go/internal/service/payroll"
)

func main() {
	start := flag.String("start", "", "pay period start (YYYY-MM-DD)")
	end := flag.String("end", "", "pay period end (YYYY-MM-DD)")
	workingDays := flag.Int("working-days", 0, "total working days in the period (default from PAYROLL_DEFAULT_WORKING_DAYS)")
	exportPath := flag.String("export", "", "write the period's payroll register to this .xlsx file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.SlogLevel(), "dayflow-payroll-batch", cfg.App.Version, cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	svc := payrollService.NewPayrollService(
		postgresql.NewTransactor(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewSalaryComponentRepository(db),
		postgresql.NewPayrollRepository(db),
		postgresql.NewLeaveRequestRepository(db),
		postgresql.NewLeaveAllocationRepository(db),
		postgresql.NewAttendanceRepository(db),
		payrollService.NewComponentResolver(payrollService.RulesFromConfig(cfg.Payroll)),
		payrollService.NewCalculator(cfg.Payroll.ProfessionalTax),
		cfg.Payroll.DefaultWorkingDays,
		log,
	)

	req := payroll.GeneratePayrollBatchRequest{
		PayPeriodStart: *start,
		PayPeriodEnd:   *end,
	}
	if *workingDays > 0 {
		req.TotalWorkingDays = workingDays
	}

	result, err := svc.GeneratePayrollBatch(ctx, req)
	if err != nil {
		log.Error("payroll batch failed", slog.Any("error", err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error("failed to write result", slog.Any("error", err))
		os.Exit(1)
	}

	if *exportPath != "" {
		if err := exportRegister(ctx, svc, *exportPath, *start, *end); err != nil {
			log.Error("failed to export payroll register", slog.Any("error", err))
			os.Exit(1)
		}
		log.Info("payroll register exported", slog.String("path", *exportPath))
	}

	if len(result.Failed) > 0 {
		os.Exit(2)
	}
}

func exportRegister(ctx context.Context, svc payroll.PayrollService, path, start, end string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	filter := payroll.PayrollFilter{PeriodFrom: &start, PeriodTo: &end, SortBy: "pay_period_start", SortOrder: "asc"}
	if err := svc.ExportPayrollRegister(ctx, filter, f); err != nil {
		return err
	}
	return f.Sync()
}
