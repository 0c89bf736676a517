package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bizdash/internal/config"
	"bizdash/internal/modules/dashboard/application/handler"
	"bizdash/internal/modules/dashboard/application/store"
	"bizdash/internal/modules/dashboard/application/usecase"
	"bizdash/internal/modules/dashboard/infrastructure"
	transport "bizdash/internal/modules/dashboard/interface"
	"bizdash/internal/platform/broker"
	"bizdash/internal/platform/tracing"
	"bizdash/internal/shared/auth"
	"bizdash/internal/shared/logging"
)

func main() {
	// Load .env so local runs pick up overrides.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := logging.Setup(cfg.Logging.Directory, logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("dashboard api configured",
		slog.String("host", cfg.API.Host),
		slog.Duration("timeout", cfg.API.Timeout),
		slog.Any("selfSignedHosts", cfg.API.SelfSignedHosts),
		slog.Bool("requireToken", cfg.API.RequireToken),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var tracer *tracing.Tracer
	exporter, err := tracing.NewExporter(context.Background(), cfg.Tracing.Endpoint, cfg.Tracing.Stdout, os.Stdout)
	if err != nil {
		slog.Warn("tracing disabled", slog.Any("error", err))
	} else if exporter != nil {
		tracer = tracing.NewTracer(cfg.Tracing.ServiceName, exporter)
		slog.Info("tracing enabled", slog.String("service", cfg.Tracing.ServiceName), slog.String("endpoint", cfg.Tracing.Endpoint))
	}

	client := infrastructure.NewResourceClient(infrastructure.ResourceClientConfig{
		BaseURL:         cfg.API.Host,
		Timeout:         cfg.API.Timeout,
		SelfSignedHosts: cfg.API.SelfSignedHosts,
		Tokens:          auth.ContextTokenProvider{Fallback: auth.StaticToken(cfg.API.ServiceToken)},
		RequireToken:    cfg.API.RequireToken,
		Metrics:         infrastructure.NewMetrics(registry),
		Tracer:          tracer,
	})

	hub := infrastructure.NewHub()
	refs := store.NewReferenceStore()
	refs.OnUpdate(usecase.NewBroadcastUseCase(hub).StoreHook())
	pagesUC := usecase.NewPagesUseCase(client, refs)

	var validator auth.TokenValidator
	if cfg.Security.JWTSecret != "" {
		validator = auth.NewJWTValidator(cfg.Security.JWTSecret)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := infrastructure.NewHandlerRegistry()
	events.Register(handler.NewBranchEventHandler(pagesUC, cfg.API.ServiceToken, nil))
	started := broker.StartKafkaConsumers(ctx, events, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.Int("consumers", started))

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	if tracer != nil {
		e.Use(tracing.Middleware(tracer))
	}
	transport.NewHandler(pagesUC, client, hub, validator).Register(e, registry)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("tracer shutdown error", slog.Any("error", err))
	}
}
