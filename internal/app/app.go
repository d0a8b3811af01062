package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/HeidiChen0/Archool/internal/auth"
	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/config"
	"github.com/HeidiChen0/Archool/internal/events"
	"github.com/HeidiChen0/Archool/internal/health"
	"github.com/HeidiChen0/Archool/internal/kafka"
	"github.com/HeidiChen0/Archool/internal/logger"
	"github.com/HeidiChen0/Archool/internal/messaging"
	"github.com/HeidiChen0/Archool/internal/metrics"
	"github.com/HeidiChen0/Archool/internal/middleware"
	"github.com/HeidiChen0/Archool/internal/portal"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"
	"github.com/HeidiChen0/Archool/internal/telemetry"
	"github.com/HeidiChen0/Archool/internal/textgen"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const sweepInterval = 5 * time.Minute

type App struct {
	config    *config.Config
	router    chi.Router
	server    *http.Server
	logger    *slog.Logger
	publisher events.Publisher
	meters    *sdkmetric.MeterProvider
	stop      context.CancelFunc
}

func New() *App {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogLogger := logger.NewWithServiceContext(ServiceName, Version, cfg.Env)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)
	slogLogger.Info("config loaded", "env", cfg.Env, "commit", GitCommit)

	app := &App{
		config: cfg,
		router: chi.NewRouter(),
		logger: slogLogger,
	}

	ctx, stop := context.WithCancel(context.Background())
	app.stop = stop

	if cfg.Telemetry.OTLPEndpoint != "" {
		provider, err := telemetry.InitMeterProvider(ctx, cfg.Telemetry.OTLPEndpoint, ServiceName, Version, slogLogger)
		if err != nil {
			slogLogger.Warn("failed to initialize OTel metrics", "error", err)
		} else {
			app.meters = provider
		}
	}

	meter := otel.Meter(ServiceName)
	m, err := metrics.New(meter)
	if err != nil {
		slogLogger.Warn("failed to initialize metrics", "error", err)
		m = nil
	}

	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Health endpoints (no session required)
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)

	publisher, err := newPublisher(cfg.Events, slogLogger)
	if err != nil {
		slogLogger.Warn("failed to initialize event publisher, events will only be logged",
			"driver", cfg.Events.Driver, "error", err)
		publisher = events.NewLogPublisher(slogLogger)
	}
	if checker, ok := publisher.(health.Checker); ok {
		healthHandler.AddChecker(cfg.Events.Driver, checker)
	}
	app.publisher = publisher

	cat := catalog.New()
	reviews := review.NewMemoryRepository()

	generator := textgen.NewGeminiGenerator(cfg.TextGen.Model, cfg.TextGen.APIKeyEnv)
	assistant := textgen.NewAssistant(generator, slogLogger)
	controller := session.NewController(cat, reviews, assistant, publisher, m, slogLogger)

	store := session.NewStore(cfg.Session.TTL())
	tokens := auth.NewTokens(cfg.Session.Secret, cfg.Session.TTL())
	cookie := auth.CookieConfig{
		Name:   cfg.Session.CookieName,
		Env:    cfg.Env,
		MaxAge: int(cfg.Session.TTL().Seconds()),
	}

	go store.RunSweeper(ctx, sweepInterval, slogLogger)
	if err := metrics.RegisterRuntime(meter, store.Len); err != nil {
		slogLogger.Warn("failed to register runtime metrics", "error", err)
	}

	portalHandler := portal.NewHandler(controller, cat, reviews, slogLogger)

	app.router.Route("/api", func(r chi.Router) {
		r.Use(auth.Sessions(store, tokens, cookie, slogLogger))
		portalHandler.RegisterRoutes(r)
	})

	slogLogger.Info("application initialized successfully")

	return app
}

// newPublisher connects the configured broker. An empty driver only logs events.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	switch cfg.Driver {
	case "":
		return events.NewLogPublisher(logger), nil
	case "nats":
		producer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		return producer, nil
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka producer: %w", err)
		}
		return producer, nil
	}
	return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
}

func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port, "version", Version)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")
	a.stop()

	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("failed to close event publisher", "error", err)
	}
	if a.meters != nil {
		if err := telemetry.Shutdown(ctx, a.meters, a.logger); err != nil {
			a.logger.Warn("failed to flush metrics", "error", err)
		}
	}
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}
