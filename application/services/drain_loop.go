package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// DefaultProcessingDelay gives the indexer time to ingest the block a webhook refers to.
const DefaultProcessingDelay = 60 * time.Second

// DrainLoop consumes one queued job per cycle on a fixed delay.
// The next cycle is armed only after the current one has finished.
type DrainLoop struct {
	queue     interfaces.JobQueue
	processor interfaces.JobProcessor
	delay     time.Duration
	metrics   interfaces.PipelineMetrics
	logger    interfaces.Logger
}

// NewDrainLoop creates a drain loop. metrics may be nil.
func NewDrainLoop(
	queue interfaces.JobQueue,
	processor interfaces.JobProcessor,
	delay time.Duration,
	metrics interfaces.PipelineMetrics,
	logger interfaces.Logger,
) *DrainLoop {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}

	return &DrainLoop{
		queue:     queue,
		processor: processor,
		delay:     delay,
		metrics:   metrics,
		logger:    logger,
	}
}

// Delay returns the fixed inter-cycle delay.
func (l *DrainLoop) Delay() time.Duration {
	return l.delay
}

// Run drains the queue until ctx is cancelled. Jobs still queued at that point are abandoned.
func (l *DrainLoop) Run(ctx context.Context) error {
	l.logger.Info("Drain loop started", "delay", l.delay)

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Drain loop stopped", "pending_jobs", l.queue.Len())
			return ctx.Err()
		case <-timer.C:
			l.DrainOnce(ctx)
			timer.Reset(l.delay)
		}
	}
}

// DrainOnce pops at most one job and processes it. It reports whether a job was taken.
// Processing errors and panics are logged and the job is dropped.
func (l *DrainLoop) DrainOnce(ctx context.Context) bool {
	job, ok := l.queue.Dequeue()
	if l.metrics != nil {
		l.metrics.SetQueueDepth(l.queue.Len())
	}
	if !ok {
		return false
	}

	l.logger.Debug("Processing job",
		"token", job.TokenAddress,
		"event_type", job.EventType.String(),
		"block", job.BlockNumber,
	)

	if err := l.process(ctx, job); err != nil {
		l.logger.Error("Error processing job",
			"token", job.TokenAddress,
			"event_type", job.EventType.String(),
			"block", job.BlockNumber,
			"error", err,
		)
	}

	return true
}

func (l *DrainLoop) process(ctx context.Context, job entities.Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing job: %v", r)
		}
	}()

	return l.processor.Process(ctx, job)
}
