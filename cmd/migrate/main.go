package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dayflow-hrms/hrms-backend-go/internal/config"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hrms/hrms-backend-go/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, version, reset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.SlogLevel(), "dayflow-migrate", cfg.App.Version, cfg.App.Env)

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("failed to set goose dialect", slog.Any("error", err))
		os.Exit(1)
	}

	if err := goose.Run(*command, db, ".", flag.Args()...); err != nil {
		log.Error("migration failed", slog.String("command", *command), slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("migration finished", slog.String("command", *command))
}
