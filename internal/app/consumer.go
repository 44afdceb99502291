package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/events"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "hire-reports-cache-warmer"

// RunConsumer keeps the report cache warm for cfg.ReportYear until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	deps, err := connect(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	reportService := newReportService(deps.gormDB, deps.rdb, cfg.ReportCacheTTL, log)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.BatchReconciledTopic,
		GroupID:        consumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeBatchReconciled(ctx, reader, reportService, cfg.ReportYear, log)

	log.Info("consumer shut down")
	return nil
}
