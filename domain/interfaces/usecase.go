package interfaces

import (
	"context"

	"github.com/ngmachado/web3-hooks/domain/entities"
)

// WebhookIntakeUseCase validates inbound webhook payloads and enqueues jobs.
type WebhookIntakeUseCase interface {
	// Execute parses body for eventType. It reports whether a job was enqueued;
	// payloads without a token address are accepted without producing a job.
	Execute(ctx context.Context, eventType entities.EventType, body []byte) (bool, error)
	// Reject records a webhook that could not be read and returns the error to report.
	Reject(ctx context.Context, eventType entities.EventType, cause error) error
}

// JobProcessor resolves, formats and delivers a single job.
type JobProcessor interface {
	Process(ctx context.Context, job entities.Job) error
}
