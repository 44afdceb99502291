package consumer

import (
	"context"
	"encoding/json"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// CacheWarmer recomputes cached reports for a year.
type CacheWarmer interface {
	Warm(ctx context.Context, year int) error
}

// ConsumeBatchReconciled refreshes the report cache for year on every
// batch-reconciled event. A failed refresh is logged and skipped; the reader
// still moves past it and the next event recomputes every report.
func ConsumeBatchReconciled(
	ctx context.Context,
	reader MessageReader,
	warmer CacheWarmer,
	year int,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.batch_reconciled")
	log.Info("batch reconciled consumer started", zap.Int("year", year))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("batch reconciled consumer stopped")
				return
			}
			log.Error("fetch batch reconciled message failed", zap.Error(err))
			continue
		}

		var event events.BatchReconciledEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode batch_reconciled event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != events.BatchReconciledEventType {
			log.Warn("skipping unexpected event type", zap.String("event_type", event.EventType))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := warmer.Warm(ctx, year); err != nil {
			log.Error("refresh report cache failed",
				zap.String("kind", event.Kind),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit batch reconciled message failed", zap.Error(err))
			continue
		}

		log.Info("report cache refreshed from batch_reconciled event",
			zap.String("kind", event.Kind),
			zap.Int("inserted", event.Inserted),
			zap.Int("updated", event.Updated),
			zap.String("request_id", event.RequestID),
		)
	}
}
