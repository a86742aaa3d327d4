package app

import (
	"context"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/audit"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka/consumer"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer stores audit.logged events from Kafka in audit_logs.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	if err := gormDB.AutoMigrate(&audit.Log{}); err != nil {
		return err
	}

	auditRepo := audit.NewRepository(gormDB)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          cfg.Kafka.AuditTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAuditLog(ctx, reader, auditRepo, logger)

	waitForSignal()

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
