package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/worker"
)

const (
	workerName        = "route-import"
	defaultRetryDelay = 2 * time.Second
)

// Importer runs one operator import.
type Importer interface {
	Import(ctx context.Context, operatorCode, operatorSlug string) (*domain.ImportResult, error)
}

// RouteImportWorker consumes import requests and publishes one done event
// per request. Every message is acked once handled, including malformed ones.
type RouteImportWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	importer   Importer
	maxRetries int
	retryDelay time.Duration
}

func NewRouteImportWorker(
	streamRepo repository.StreamRepository,
	importer Importer,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *RouteImportWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RouteImportWorker{
		BaseWorker: worker.NewBaseWorker(workerName, consumerGroup, logger),
		streamRepo: streamRepo,
		importer:   importer,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

func (w *RouteImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting route import worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_retries", w.maxRetries))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteImport, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamRouteImport, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		logger.Error("Failed to consume stream", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("message channel closed")
			}

			if err := w.processMessage(ctx, msg); err != nil {
				// Left pending; redelivered when this consumer restarts.
				logger.Error("Failed to process message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
				continue
			}

			if err := w.streamRepo.AckMessage(ctx, domain.StreamRouteImport, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Error("Failed to acknowledge message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

// processMessage returns an error only when the done event could not be
// published.
func (w *RouteImportWorker) processMessage(ctx context.Context, msg domain.StreamMessage) error {
	logger := w.Logger()

	var event domain.ImportRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Error("Failed to unmarshal import request, skipping",
			zap.String("message_id", msg.ID),
			zap.String("raw_data", msg.Data),
			zap.Error(err))
		return nil
	}

	logger.Info("Processing import request",
		zap.String("request_id", event.RequestID.String()),
		zap.String("operator_code", event.OperatorCode),
		zap.String("operator_slug", event.OperatorSlug))

	result, err := w.runImport(ctx, event)

	done := domain.ImportDoneEvent{
		RequestID:    event.RequestID,
		OperatorSlug: event.OperatorSlug,
		FinishedAt:   time.Now().UTC(),
	}
	if result != nil {
		done.Fetched = result.Fetched
		done.Created = result.Created
		done.Updated = result.Updated
	}
	if err != nil {
		done.Error = err.Error()
	}

	if _, err := w.streamRepo.PublishToStream(ctx, domain.StreamRouteImportDone, done); err != nil {
		return fmt.Errorf("failed to publish done event: %w", err)
	}
	return nil
}

// runImport retries only external service failures.
func (w *RouteImportWorker) runImport(ctx context.Context, event domain.ImportRequestEvent) (*domain.ImportResult, error) {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		result, err := w.importer.Import(ctx, event.OperatorCode, event.OperatorSlug)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !errors.Is(err, errors.ErrExternalService) || attempt == w.maxRetries {
			break
		}

		w.Logger().Warn("Import failed, retrying",
			zap.String("request_id", event.RequestID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-w.StopChan():
			return nil, lastErr
		case <-time.After(w.retryDelay):
		}
	}
	return nil, lastErr
}
