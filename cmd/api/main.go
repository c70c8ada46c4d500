package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filevault/docs"
	"filevault/internal/config"
	"filevault/internal/database"
	"filevault/internal/database/migration"
	"filevault/internal/events"
	handlers "filevault/internal/http/handler"
	"filevault/internal/http/middleware"
	"filevault/internal/logger"
	"filevault/internal/otel"
	"filevault/internal/repository/postgres"
	"filevault/internal/service"
	"filevault/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title       filevault API
// @version     1.0
// @description File catalogue and share-link service behind the chat bot.
// @BasePath    /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := logger.Location(cfg.Log.Timezone)
	log := logger.New(os.Stdout, cfg.Log.Level, loc)

	if err := run(cfg, loc, log); err != nil {
		log.Error("server_exit", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, loc *time.Location, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	if cfg.Database.MigrateOnStart {
		dbURL, err := database.BuildMigrationURL(cfg.Database)
		if err != nil {
			return err
		}
		if err := migration.Up(dbURL, cfg.Database.Host, log); err != nil {
			return err
		}
	}

	// PostgreSQL connection (pooled via database/sql, traced via otelsql)
	db, err := database.NewPostgres(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	pub, err := newPublisher(cfg.AMQP, log)
	if err != nil {
		return err
	}
	defer pub.Close()

	// Object storage only backs uploaded exports; without it exports are download-only.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		if objStore, err = storage.NewMinIO(cfg.MinIO); err != nil {
			return err
		}
	}

	catalog := service.NewCatalogService(postgres.NewFilePostgres(db), pub, cfg.Bot.MaxFileSize, log)
	shares := service.NewShareService(postgres.NewShareLinkPostgres(db), catalog, pub, service.SystemClock{}, cfg.Bot.Username, log)
	exports := service.NewExportService(catalog, objStore, service.SystemClock{}, loc, log)
	bookmarks := service.NewBookmarkService(postgres.NewBookmarkPostgres(db), log)

	sweeper := service.NewSweeper(shares, cfg.Sweep.Interval, log)
	if cfg.Sweep.Enabled {
		sweeper.Start(ctx)
		defer sweeper.Stop()
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, handlers.Services{
		Catalog:   catalog,
		Shares:    shares,
		Exports:   exports,
		Bookmarks: bookmarks,
		Sweeper:   sweeper,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_started", slog.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newPublisher(cfg config.AMQPConfig, log *slog.Logger) (events.Publisher, error) {
	if !cfg.Enabled() {
		log.Info("events_disabled")
		return events.Noop{}, nil
	}
	pub, err := events.NewAMQPPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	log.Info("events_enabled", slog.String("exchange", cfg.Exchange))
	return pub, nil
}
