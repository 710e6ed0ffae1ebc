package interfaces

import "context"

// Notifier delivers formatted messages to an external chat channel.
type Notifier interface {
	// Send delivers one message and returns once the channel accepted it.
	Send(ctx context.Context, message string) error

	// IsConfigured checks if the notifier is properly configured.
	IsConfigured() bool
}
