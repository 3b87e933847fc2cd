package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/JGuylherme/Service-POS/docs"
	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/config"
	dbpkg "github.com/JGuylherme/Service-POS/internal/db"
	"github.com/JGuylherme/Service-POS/internal/logger"
	"github.com/JGuylherme/Service-POS/internal/middleware"
	"github.com/JGuylherme/Service-POS/internal/routes"
	"github.com/JGuylherme/Service-POS/internal/timezone"
)

// @title           Service POS API
// @version         1.0
// @description     Salon point-of-sale back office: customers, employees, services, appointments, payments and time tracking.

// @host      localhost:3000
// @BasePath  /api

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load config")
	}

	logger.InitLogging(cfg.LogLevel, cfg.LogFilePath)
	timezone.SetDefault(cfg.StoreTimezone)
	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to open database")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := routes.NewEngine(middleware.NewHTTPMetrics(registry))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	routes.RegisterRoutes(r, db, cfg, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoLog(ctx, "Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Fatal().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLog(ctx, "server shutdown failed: %v", err)
	}
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.InfoLog(ctx, "server stopped")
}
