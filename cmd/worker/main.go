package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecoleplus/drivingschool/config"
	"github.com/ecoleplus/drivingschool/internal/email"
	"github.com/ecoleplus/drivingschool/internal/kafka"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/ecoleplus/drivingschool/internal/service/registration"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	registrationRepo := repository.NewRegistrationRepository(pool)
	registrationService := registration.NewRegistrationService(
		registrationRepo,
		nil,
		nil,
		"",
		cfg.Registration.StandardSlots,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, sender); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	staleAge := time.Duration(cfg.Worker.StalePendingDays) * 24 * time.Hour
	sweep := time.NewTicker(time.Duration(cfg.Worker.StaleSweepMinutes) * time.Minute)
	defer sweep.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweep.C:
			count, err := registrationService.CountStalePending(ctx, staleAge)
			if err != nil {
				log.Printf("stale sweep error: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("%d pending registrations older than %d days await review", count, cfg.Worker.StalePendingDays)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
