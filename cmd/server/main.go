package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia questions and categories with pagination, search and quiz play
// @host            localhost:8080
// @BasePath        /

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:          "trivia-api",
		Short:        "Trivia question API server",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml)")

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(importCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the process-wide state every subcommand starts from.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.log.Error("failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}
