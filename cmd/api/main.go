package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-usage-tracker/internal/bootstrap"
	"ai-usage-tracker/internal/config"

	eventsHttp "ai-usage-tracker/internal/events/adapters/http/fiber"
	eventsUsecase "ai-usage-tracker/internal/events/core/usecase"

	metricsHttp "ai-usage-tracker/internal/metrics/adapters/http/fiber"
	metricsUsecase "ai-usage-tracker/internal/metrics/core/usecase"

	goalsHttp "ai-usage-tracker/internal/goals/adapters/http/fiber"
	goalsUsecase "ai-usage-tracker/internal/goals/core/usecase"

	"ai-usage-tracker/internal/platform/logger"
	"ai-usage-tracker/internal/platform/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "ai-usage-tracker/docs"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := observability.NewMetrics(registry)

	// Event store
	store, err := bootstrap.OpenStore(context.Background(), cfg.Storage, m, log)
	if err != nil {
		log.Fatal("failed to open event store", "driver", cfg.Storage.Driver, "error", err)
	}
	defer store.Close()

	renderer, err := bootstrap.NewChartRenderer(cfg.Charts)
	if err != nil {
		log.Fatal("failed to init chart renderer", "error", err)
	}

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(store)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(store)
	getProgressUC := metricsUsecase.NewGetProgressUseCase(store)
	renderChartUC := metricsUsecase.NewRenderChartUseCase(store, renderer)
	evaluateGoalUC := goalsUsecase.NewEvaluateGoalUseCase(store)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.RequestLogger(log))
	app.Use(observability.HTTPMetricsMiddleware(m))

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC, log)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)
	app.Get("/events", eventsHandler.ListEvents)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC, getProgressUC, renderChartUC, log)
	app.Get("/metrics", metricsHandler.GetMetrics)
	app.Get("/progress", metricsHandler.GetProgress)
	app.Get("/charts/:kind", metricsHandler.GetChart)

	// goals endpoints
	goalsHandler := goalsHttp.NewGoalHandler(evaluateGoalUC, log)
	app.Get("/goals", goalsHandler.GetGoal)

	// Ops
	app.Get("/prometheus", observability.MetricsHandler(registry))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr); err != nil {
			log.Error("fiber stopped", "error", err)
		}
	}()

	log.Info("server started", "addr", cfg.HTTP.Addr, "storage", cfg.Storage.Driver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", "error", err)
	}

	log.Info("server exiting")
}
