package interfaces

// PipelineMetrics records counters for the webhook pipeline.
type PipelineMetrics interface {
	WebhookSucceeded(eventType string)
	WebhookFailed()
	JobProcessed(eventType string)
	JobFailed(eventType string)
	EventsFetched(eventType string, count int)
	NotificationSent()
	NotificationFailed()
	SetQueueDepth(depth int)
}
