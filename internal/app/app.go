package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventBookingCore/internal/config"
	"github.com/stpnv0/EventBookingCore/internal/dispatch"
	"github.com/stpnv0/EventBookingCore/internal/handler"
	"github.com/stpnv0/EventBookingCore/internal/middleware"
	"github.com/stpnv0/EventBookingCore/internal/notification"
	"github.com/stpnv0/EventBookingCore/internal/repository"
	"github.com/stpnv0/EventBookingCore/internal/repository/memory"
	"github.com/stpnv0/EventBookingCore/internal/router"
	"github.com/stpnv0/EventBookingCore/internal/scheduler"
	"github.com/stpnv0/EventBookingCore/internal/service"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	dispatcher *dispatch.Dispatcher
}

// storage is the set of ports backed by the configured driver.
type storage struct {
	bookings ports.BookingStore
	events   ports.EventRepo
	users    ports.UserRepo
	groups   ports.GroupMembership
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingCore",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	var st storage
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		st = app.memoryStorage()
	default:
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		st = app.postgresStorage()
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) postgresStorage() storage {
	return storage{
		bookings: repository.NewBookingRepo(a.db),
		events:   repository.NewEventRepo(a.db),
		users:    repository.NewUserRepo(a.db),
		groups:   repository.NewMembershipRepo(a.db),
	}
}

func (a *App) memoryStorage() storage {
	a.log.Warn("using in-memory storage, data is lost on restart")

	store := memory.New()
	return storage{
		bookings: store,
		events:   store.Events(),
		users:    store.Users(),
		groups:   store,
	}
}

func (a *App) initServices(st storage) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.dispatcher = dispatch.New(a.cfg.Dispatch.Workers, a.cfg.Dispatch.Timeout, a.log)

	eventService := service.NewEventService(st.events, st.bookings)
	userService := service.NewUserService(st.users)
	bookingService := service.NewBookingService(
		st.bookings,
		st.events,
		st.users,
		st.groups,
		n,
		a.dispatcher,
		service.BookingConfig{
			ReservationCloseInterval: a.cfg.Booking.ReservationCloseInterval,
			PIIRetention:             a.cfg.Booking.PIIRetention,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schedulerDone := make(chan struct{})
	go func() {
		a.scheduler.Start(ctx)
		close(schedulerDone)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}
	<-schedulerDone

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown stops accepting requests, waits for queued side effects and
// closes the database. The scheduler must already be stopped.
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

	a.dispatcher.Wait()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "side effects drained")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
