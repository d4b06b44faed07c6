package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/config"
	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/handler"
	"github.com/gemgeek/alx-listing-app-deployed/internal/middleware"
	"github.com/gemgeek/alx-listing-app-deployed/internal/notification"
	"github.com/gemgeek/alx-listing-app-deployed/internal/repository"
	"github.com/gemgeek/alx-listing-app-deployed/internal/router"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service"
	"github.com/gin-contrib/cors"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName         = "StayBook"
	catalogLoadWait = 30 * time.Second
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	catalog    *repository.Catalog
	dispatcher *notification.Dispatcher
	publisher  *notification.AMQPPublisher
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initCatalog(); err != nil {
		return nil, fmt.Errorf("init catalog: %w", err)
	}

	if err = app.initNotifications(); err != nil {
		return nil, fmt.Errorf("init notifications: %w", err)
	}

	app.initHTTP()

	return app, nil
}

func (a *App) initCatalog() error {
	var (
		catalog *repository.Catalog
		err     error
	)

	switch a.cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		catalog, err = a.loadPostgresCatalog()
	default:
		catalog, err = repository.NewSeedCatalog()
	}
	if err != nil {
		return err
	}

	if err = checkOrphans(catalog, a.cfg.Catalog.Strict, a.log); err != nil {
		return err
	}

	properties, reviews := catalog.Len()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "catalog loaded",
		logger.String("source", a.cfg.Catalog.Source),
		logger.Int("properties", properties),
		logger.Int("reviews", reviews),
	)

	a.catalog = catalog
	return nil
}

// checkOrphans reports reviews whose property is not in the catalog. They
// stay reachable only through their own property id, which nothing lists.
func checkOrphans(catalog *repository.Catalog, strict bool, log logger.Logger) error {
	orphans := catalog.Orphans()
	if len(orphans) == 0 {
		return nil
	}

	if strict {
		return fmt.Errorf("%w: %d reviews reference unknown properties", domain.ErrInvalidCatalog, len(orphans))
	}

	for _, r := range orphans {
		log.LogAttrs(context.Background(), logger.WarnLevel, "review references unknown property",
			logger.String("review_id", r.ID),
			logger.String("property_id", r.PropertyID),
		)
	}
	return nil
}

// loadPostgresCatalog migrates, reads both tables once and disconnects.
func (a *App) loadPostgresCatalog() (*repository.Catalog, error) {
	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if cerr := db.Master.Close(); cerr != nil {
			a.log.Warn("close catalog database", logger.String("error", cerr.Error()))
		}
	}()
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadWait)
	defer cancel()

	if err = db.Master.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return repository.NewPostgresSource(db).Load(ctx)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

func (a *App) initNotifications() error {
	var sinks []notification.Sink

	tg, err := notification.NewTelegramNotifier(a.cfg.Notify.TelegramToken, a.cfg.Notify.TelegramChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	if tg.Enabled() {
		sinks = append(sinks, tg)
	}

	if a.cfg.Notify.AMQPURL != "" {
		pub, err := notification.NewAMQPPublisher(a.cfg.Notify.AMQPURL, a.cfg.Notify.AMQPQueue)
		if err != nil {
			return fmt.Errorf("init amqp publisher: %w", err)
		}
		a.publisher = pub
		sinks = append(sinks, pub)
	} else {
		a.log.Warn("rabbitmq url is empty, booking events disabled")
	}

	a.dispatcher = notification.NewDispatcher(
		a.cfg.Notify.Workers,
		a.cfg.Notify.SendTimeout,
		a.log,
		sinks...,
	)
	return nil
}

func (a *App) initHTTP() {
	propertyService := service.NewPropertyService(a.catalog, a.cfg.Latency.Properties)
	reviewService := service.NewReviewService(a.catalog, a.cfg.Latency.Reviews)
	bookingService := service.NewBookingService(
		service.NewBookingIDGenerator(),
		a.dispatcher,
		a.log,
		a.cfg.Latency.Bookings,
	)

	h := handler.NewHandler(propertyService, reviewService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		cors.New(corsConfig(a.cfg.CORS)),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	for _, route := range router.Routes(r) {
		a.log.Debug("route registered", logger.String("route", route))
	}

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        c.MaxAge,
	}

	for _, o := range c.AllowOrigins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = c.AllowOrigins
	if len(cc.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	}
	return cc
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeNotifications()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeNotifications()

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeNotifications drains pending notifications before the publisher
// connection goes away.
func (a *App) closeNotifications() {
	a.dispatcher.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "notification dispatcher stopped")

	if a.publisher == nil {
		return
	}
	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close amqp publisher", logger.String("error", err.Error()))
	}
}
