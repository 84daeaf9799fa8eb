package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/worker"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond
)

// RelayWorker consumes report events from the broadcast stream and
// re-publishes them on the pub/sub channel that socket gateways
// subscribe to. Delivery is at-most-once: unparseable messages are
// acked and dropped.
type RelayWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	consumerName string
	batchSize    int
}

func NewRelayWorker(
	streamRepo repository.StreamRepository,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *RelayWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &RelayWorker{
		BaseWorker:   worker.NewBaseWorker("report-broadcast-relay", consumerGroup, logger),
		streamRepo:   streamRepo,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start runs the relay loop until stopped.
func (w *RelayWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RelayWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReportEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads a batch from the stream and relays each message.
// Returns the number of messages consumed.
func (w *RelayWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamReportEvents,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Relaying batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		var event domain.ReportEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse report event, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ack so a broken message does not wedge the group
			_ = w.streamRepo.AckMessage(ctx, domain.StreamReportEvents, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.streamRepo.PublishToChannel(ctx, domain.ChannelReportUpdates, msg.Data); err != nil {
			logger.Warn("Failed to relay report event",
				zap.String("message_id", msg.ID),
				zap.String("event", event.Event),
				zap.Error(err))
			// leave unacked, the message stays pending for the group
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamReportEvents, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}
