package usecases

import (
	"context"
	"fmt"

	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// FetchEvents dispatches to the fetch operation matching eventType.
func FetchEvents(
	ctx context.Context,
	fetcher interfaces.EventFetcher,
	eventType entities.EventType,
	tokenAddress, minAmount string,
	blockNumber uint64,
) ([]entities.TokenEvent, error) {
	switch eventType {
	case entities.EventTypeUpgrade:
		return fetcher.FetchUpgradedEvents(ctx, tokenAddress, minAmount, blockNumber)
	case entities.EventTypeDowngrade:
		return fetcher.FetchDowngradedEvents(ctx, tokenAddress, minAmount, blockNumber)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEventType, eventType)
	}
}

// FormatEvents renders every event, failing on the first formatter error.
func FormatEvents(
	formatter interfaces.MessageFormatter,
	events []entities.TokenEvent,
	eventType entities.EventType,
) ([]string, error) {
	messages := make([]string, 0, len(events))
	for _, event := range events {
		msg, err := formatter.Format(event, eventType)
		if err != nil {
			return nil, fmt.Errorf("failed to format event %s: %w", event.ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// processJobUseCase implements the JobProcessor interface.
type processJobUseCase struct {
	fetcher    interfaces.EventFetcher
	formatter  interfaces.MessageFormatter
	notifier   interfaces.Notifier
	repository interfaces.DeliveryRepository
	metrics    interfaces.PipelineMetrics
	minAmount  string
	logger     interfaces.Logger
}

// NewProcessJobUseCase creates a new job processor. repository and metrics may be nil.
func NewProcessJobUseCase(
	fetcher interfaces.EventFetcher,
	formatter interfaces.MessageFormatter,
	notifier interfaces.Notifier,
	repository interfaces.DeliveryRepository,
	metrics interfaces.PipelineMetrics,
	minAmount string,
	logger interfaces.Logger,
) interfaces.JobProcessor {
	return &processJobUseCase{
		fetcher:    fetcher,
		formatter:  formatter,
		notifier:   notifier,
		repository: repository,
		metrics:    metrics,
		minAmount:  minAmount,
		logger:     logger,
	}
}

// Process fetches the job's events, formats them and sends each message in order.
// Each send completes before the next starts; the first failure aborts the job.
func (uc *processJobUseCase) Process(ctx context.Context, job entities.Job) error {
	eventType := job.EventType.String()

	events, err := FetchEvents(ctx, uc.fetcher, job.EventType, job.TokenAddress, uc.minAmount, job.BlockNumber)
	if err != nil {
		uc.jobFailed(eventType)
		return err
	}

	if uc.metrics != nil {
		uc.metrics.EventsFetched(eventType, len(events))
	}

	uc.logger.Info("Fetched events",
		"event_type", eventType,
		"token", job.TokenAddress,
		"block", job.BlockNumber,
		"count", len(events))

	messages, err := FormatEvents(uc.formatter, events, job.EventType)
	if err != nil {
		uc.jobFailed(eventType)
		return err
	}

	for i, msg := range messages {
		if err := uc.notifier.Send(ctx, msg); err != nil {
			if uc.metrics != nil {
				uc.metrics.NotificationFailed()
			}
			uc.jobFailed(eventType)
			return fmt.Errorf("failed to send message %d of %d: %w", i+1, len(messages), err)
		}

		if uc.metrics != nil {
			uc.metrics.NotificationSent()
		}
		uc.logger.Info("Message sent", "message", msg)

		uc.recordDelivery(ctx, job, events[i], msg)
	}

	if uc.metrics != nil {
		uc.metrics.JobProcessed(eventType)
	}

	return nil
}

func (uc *processJobUseCase) recordDelivery(
	ctx context.Context,
	job entities.Job,
	event entities.TokenEvent,
	message string,
) {
	if uc.repository == nil {
		return
	}

	delivery := &entities.Delivery{
		TokenAddress:    job.TokenAddress,
		EventType:       job.EventType,
		TransactionHash: event.TransactionHash,
		Account:         event.Account,
		Amount:          entities.NewBigInt(event.Amount),
		BlockNumber:     event.BlockNumber,
		Message:         message,
	}

	if err := uc.repository.Save(ctx, delivery); err != nil {
		uc.logger.Warn("Failed to save delivery", "tx", event.TransactionHash, "error", err)
	}
}

func (uc *processJobUseCase) jobFailed(eventType string) {
	if uc.metrics != nil {
		uc.metrics.JobFailed(eventType)
	}
}
