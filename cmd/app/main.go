package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecoleplus/drivingschool/config"
	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/bootstrap"
	"github.com/ecoleplus/drivingschool/internal/cache"
	"github.com/ecoleplus/drivingschool/internal/kafka"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/ecoleplus/drivingschool/internal/service/news"
	"github.com/ecoleplus/drivingschool/internal/service/registration"
	"github.com/ecoleplus/drivingschool/internal/service/sessions"
	"github.com/ecoleplus/drivingschool/internal/service/tickets"
	"github.com/ecoleplus/drivingschool/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Registration.SlotsCacheTTL)*time.Second,
		time.Duration(cfg.News.CacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMins)*time.Minute)

	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)

	svcs := bootstrap.Services{
		Tokens:   tokens,
		Users:    users.NewUserService(userRepo, tokens),
		Sessions: sessions.NewSessionService(sessionRepo),
		News:     news.NewNewsService(newsRepo, commentRepo, redisCache),
		Tickets:  tickets.NewTicketService(ticketRepo, producer, cfg.Kafka.NotificationsTopic),
		Registrations: registration.NewRegistrationService(
			registrationRepo,
			redisCache,
			producer,
			cfg.Kafka.RegistrationTopic,
			cfg.Registration.StandardSlots,
			registration.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
	}

	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
