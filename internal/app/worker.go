package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka/producer"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaRequired = errors.New("KAFKA_BROKER is required")

// RunWorker relays pending outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return errKafkaRequired
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(&kafka.OutboxRecord{}); err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	relay := producer.NewAuditRelay(
		kafka.NewOutboxRepository(sqlDB),
		kafkaWriter,
		cfg.Kafka.PollInterval,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go relay.Run(ctx)

	waitForSignal()

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func waitForSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
