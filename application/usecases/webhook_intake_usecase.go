// Package usecases contains application use cases that orchestrate business logic.
// It implements webhook intake and the per-job fetch, format and notify sequence.
package usecases

import (
	"context"
	"fmt"

	"github.com/ngmachado/web3-hooks/domain/dto"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// webhookIntakeUseCase implements the WebhookIntakeUseCase interface.
type webhookIntakeUseCase struct {
	queue   interfaces.JobEnqueuer
	metrics interfaces.PipelineMetrics
	logger  interfaces.Logger
}

// NewWebhookIntakeUseCase creates a new webhook intake use case. metrics may be nil.
func NewWebhookIntakeUseCase(
	queue interfaces.JobEnqueuer,
	metrics interfaces.PipelineMetrics,
	logger interfaces.Logger,
) interfaces.WebhookIntakeUseCase {
	return &webhookIntakeUseCase{
		queue:   queue,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute turns a webhook body into a queued job.
// Payloads without a token address are acknowledged and dropped.
func (uc *webhookIntakeUseCase) Execute(
	ctx context.Context,
	eventType entities.EventType,
	body []byte,
) (bool, error) {
	if !eventType.IsValid() {
		uc.failed()
		return false, fmt.Errorf("%w: %q", errors.ErrUnknownEventType, eventType)
	}

	if hint := dto.BlockNumberHint(body); hint != nil {
		uc.logger.Info("Received webhook", "event_type", eventType.String(), "block", *hint)
	} else {
		uc.logger.Info("Received webhook", "event_type", eventType.String())
	}

	input, err := dto.ParseWebhookPayload(body)
	if err != nil {
		uc.logger.Error("Error processing webhook", "event_type", eventType.String(), "error", err)
		uc.failed()
		return false, err
	}

	if input == nil {
		uc.logger.Debug("Webhook carried no token address", "event_type", eventType.String())
		uc.succeeded(eventType)
		return false, nil
	}

	uc.logger.Info("Processing event",
		"event_type", eventType.String(),
		"token", input.TokenAddress,
		"block", input.BlockNumber)

	uc.queue.Enqueue(entities.Job{
		TokenAddress: input.TokenAddress,
		EventType:    eventType,
		BlockNumber:  input.BlockNumber,
	})
	uc.succeeded(eventType)

	return true, nil
}

// Reject counts a request whose body could not be read as a failed webhook.
func (uc *webhookIntakeUseCase) Reject(_ context.Context, eventType entities.EventType, cause error) error {
	uc.logger.Error("Error processing webhook", "event_type", eventType.String(), "error", cause)
	uc.failed()
	return fmt.Errorf("failed to read webhook body: %w", cause)
}

func (uc *webhookIntakeUseCase) succeeded(eventType entities.EventType) {
	if uc.metrics != nil {
		uc.metrics.WebhookSucceeded(eventType.String())
	}
}

func (uc *webhookIntakeUseCase) failed() {
	if uc.metrics != nil {
		uc.metrics.WebhookFailed()
	}
}
