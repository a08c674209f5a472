package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mong0520/kapaipai-api/api/openapi"
	"github.com/mong0520/kapaipai-api/internal/api/handlers"
	"github.com/mong0520/kapaipai-api/internal/api/middleware"
	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	catalog, limiter := newCatalog(&cfg.Kapaipai)
	eng := newEngine(cfg, catalog, st, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Use(
		middleware.Recovery(log),
		middleware.RequestLog(logger.Component(log, "http")),
		middleware.Metrics(),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(st,
		handlers.ReadinessCheck{Name: "marketplace_budget", Check: limiter.CheckBudget},
	))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerAPIRoutes(openapi.New(e, Version), catalog, eng, st)

	var sched *engine.Scheduler
	if cfg.Schedule.IsEnabled() {
		sched, err = engine.NewScheduler(eng, cfg.Schedule.PriceCheckInterval, logger.Component(log, "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	} else {
		log.Info("scheduler disabled")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("price check still running at shutdown")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
