// Package notifier provides chat channel implementations of interfaces.Notifier.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ngmachado/web3-hooks/domain/dto"
	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"golang.org/x/time/rate"
)

const slackChannelName = "slack"

// slackNotifier implements the Notifier interface for Slack incoming webhooks.
type slackNotifier struct {
	webhookURL string
	channel    string
	logger     interfaces.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSlackNotifier creates a new Slack notifier. ratePerSecond <= 0 disables pacing.
func NewSlackNotifier(
	webhookURL string,
	channel string,
	ratePerSecond float64,
	logger interfaces.Logger,
) interfaces.Notifier {
	return &slackNotifier{
		webhookURL: webhookURL,
		channel:    channel,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: newLimiter(ratePerSecond),
	}
}

// Send posts message to the Slack webhook and waits for it to be accepted.
func (n *slackNotifier) Send(ctx context.Context, message string) error {
	if !n.IsConfigured() {
		return &domainerrors.NotifierError{Channel: slackChannelName, Err: domainerrors.ErrNotConfigured}
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return &domainerrors.NotifierError{Channel: slackChannelName, Err: err}
	}

	payload, err := json.Marshal(dto.SlackMessage{
		Text:    message,
		Channel: n.channel,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return &domainerrors.NotifierError{Channel: slackChannelName, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domainerrors.NotifierError{
			Channel:    slackChannelName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("slack API rejected message: %s", string(body)),
		}
	}

	n.logger.Debug("Message sent to Slack", "bytes", len(payload))
	return nil
}

// IsConfigured checks if the notifier is properly configured.
func (n *slackNotifier) IsConfigured() bool {
	return n.webhookURL != ""
}

func newLimiter(ratePerSecond float64) *rate.Limiter {
	if ratePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(ratePerSecond), 1)
}
