package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linkdock/linkdock/internal/config"
	"github.com/linkdock/linkdock/internal/executor"
	"github.com/linkdock/linkdock/internal/health"
	"github.com/linkdock/linkdock/internal/httpserver"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
	"github.com/linkdock/linkdock/internal/scheduler"
	"github.com/linkdock/linkdock/internal/sources/seedfile"
	filestore "github.com/linkdock/linkdock/internal/store/file"
	"github.com/linkdock/linkdock/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	store   *filestore.Store
	sweeper *scheduler.HealthSweeper
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	policy, err := filestore.ParseDeletePolicy(cfg.CategoryDeletePolicy)
	if err != nil {
		loggerClient.Errorf("Invalid category delete policy: %v", err)
		os.Exit(1)
	}

	store, err := filestore.New(cfg.DataDir, policy, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open document store: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("document store ready", logger.String("dir", cfg.DataDir))

	// Seed only a fresh store; an existing document always wins.
	if cfg.SeedFile != "" && store.Empty() {
		if err := seedfile.Apply(cfg.SeedFile, store, loggerClient); err != nil {
			loggerClient.Warn("failed to apply seed file", logger.Error(err))
		}
	}

	checker := health.NewChecker(cfg.HealthTimeout)
	runner := executor.NewRunner(cfg.ExecuteTimeout)

	var sweeper *scheduler.HealthSweeper
	var sweepTrigger chan struct{}
	if cfg.SweepEnabled {
		sweepTrigger = make(chan struct{}, 1)
		sweeper = scheduler.NewHealthSweeper(store, checker, loggerClient, cfg.SweepWorkers, sweepTrigger)
	} else {
		loggerClient.Info("periodic health sweep disabled")
	}

	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		Store:             store,
		Checker:           checker,
		Runner:            runner,
		PingTimeout:       cfg.PingTimeout,
		SweepTrigger:      sweepTrigger,
		ProbeBurst:        cfg.ProbeBurst,
		ProbeRefillPerMin: cfg.ProbeRefillPerMin,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  server,
		store:   store,
		sweeper: sweeper,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkDock v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("LinkDock %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.sweeper != nil {
		if err := a.sweeper.Start(ctx); err != nil {
			return fmt.Errorf("failed to start health sweeper: %w", err)
		}
		a.logger.Info("health sweeper started",
			logger.Int("workers", a.cfg.SweepWorkers))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.sweeper != nil {
		a.sweeper.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ LinkDock stopped cleanly")
	return nil
}
