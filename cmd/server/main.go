package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/iliyamo/contacts-api/internal/config"
	"github.com/iliyamo/contacts-api/internal/database"
	"github.com/iliyamo/contacts-api/internal/handler"
	"github.com/iliyamo/contacts-api/internal/logging"
	"github.com/iliyamo/contacts-api/internal/metrics"
	"github.com/iliyamo/contacts-api/internal/queue"
	"github.com/iliyamo/contacts-api/internal/repository"
	"github.com/iliyamo/contacts-api/internal/router"
	"github.com/iliyamo/contacts-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info", "json")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if cfg.DBMigrate {
		if err := database.Migrate(db.DB, log); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	events := newPublisher(cfg, log)
	if c, ok := events.(interface{ Close() error }); ok {
		defer c.Close()
	}

	userSvc, err := service.NewUserService(repository.NewUserRepo(db), events, cfg.BcryptCost, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init user service")
	}
	contactSvc := service.NewContactService(repository.NewContactRepo(db), events, log)

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	}

	e := router.New(router.Deps{
		Users:     handler.NewUserHandler(userSvc, cfg.RequestTimeout),
		Contacts:  handler.NewContactHandler(contactSvc, cfg.RequestTimeout),
		Resolver:  userSvc,
		Metrics:   metrics.New(),
		DB:        db,
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Log:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

// newPublisher connects to RabbitMQ when configured.  Without a broker, or
// when the dial fails, events are dropped and the API keeps serving.
func newPublisher(cfg config.Config, log zerolog.Logger) service.EventPublisher {
	if cfg.RabbitMQURL == "" {
		return queue.Nop{}
	}
	p, err := queue.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq unavailable, events disabled")
		return queue.Nop{}
	}
	return p
}
