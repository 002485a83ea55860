// Package main - Entry point for the placement budget validation server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"foster-budget/adapters/archive"
	"foster-budget/adapters/placementdata"
	"foster-budget/api"
	"foster-budget/core/report"
	"foster-budget/core/rules"
	"foster-budget/core/validation"
	"foster-budget/internal/config"
	"foster-budget/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", "", "config file path")
	dataPath := flag.String("data", "", "JSON dataset with placements and budgets")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()
	logger := logging.Named("server")

	if *dataPath == "" {
		logger.Fatal("--data is required")
	}
	source, store, err := placementdata.LoadFile(*dataPath)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	table := rules.Builtin()
	if cfg.Rules.TablePath != "" {
		table, err = rules.LoadHCL(cfg.Rules.TablePath)
		if err != nil {
			logger.Fatal("failed to load rule table", zap.Error(err))
		}
	}

	validator := validation.NewValidator(source, store, table).
		WithLogger(logging.Named("validator"))
	if cfg.Validation.TolerancePercent > 0 {
		validator.WithTolerance(decimal.NewFromFloat(cfg.Validation.TolerancePercent / 100))
	}
	if cfg.Validation.FetchTimeoutSeconds > 0 {
		validator.WithFetchTimeout(time.Duration(cfg.Validation.FetchTimeoutSeconds) * time.Second)
	}

	reporter := report.NewReporter(validator).
		WithWorkers(cfg.Report.Workers).
		WithLogger(logging.Named("reporter"))

	reports, err := archive.NewFileArchive(cfg.Archive.Directory)
	if err != nil {
		logger.Fatal("failed to open report archive", zap.Error(err))
	}

	apiServer := api.NewServer(version, validator, reporter, reports, logging.Named("api"))

	srv := &http.Server{Addr: *addr, Handler: apiServer.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", *addr),
			zap.String("rule_table", table.Version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
	}
}
