package notifier

import (
	"context"
	"fmt"

	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"
)

const telegramChannelName = "telegram"

// telegramNotifier implements the Notifier interface for a Telegram chat.
type telegramNotifier struct {
	bot     *tele.Bot
	chat    tele.ChatID
	logger  interfaces.Logger
	limiter *rate.Limiter
}

// TelegramOptions configures the Telegram notifier.
type TelegramOptions struct {
	Token         string
	ChatID        int64
	RatePerSecond float64

	// APIURL overrides the Bot API base URL.
	APIURL string
}

// NewTelegramNotifier creates a Telegram notifier. An empty token yields an unconfigured notifier.
func NewTelegramNotifier(opts TelegramOptions, logger interfaces.Logger) (interfaces.Notifier, error) {
	n := &telegramNotifier{
		chat:    tele.ChatID(opts.ChatID),
		logger:  logger,
		limiter: newLimiter(opts.RatePerSecond),
	}
	if opts.Token == "" {
		return n, nil
	}

	bot, err := tele.NewBot(tele.Settings{
		URL:     opts.APIURL,
		Token:   opts.Token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

// Send delivers message to the configured chat.
func (n *telegramNotifier) Send(ctx context.Context, message string) error {
	if !n.IsConfigured() {
		return &domainerrors.NotifierError{Channel: telegramChannelName, Err: domainerrors.ErrNotConfigured}
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return &domainerrors.NotifierError{Channel: telegramChannelName, Err: err}
	}

	if _, err := n.bot.Send(n.chat, message); err != nil {
		return &domainerrors.NotifierError{Channel: telegramChannelName, Err: err}
	}

	n.logger.Debug("Message sent to Telegram", "chat", int64(n.chat))
	return nil
}

// IsConfigured checks if the notifier is properly configured.
func (n *telegramNotifier) IsConfigured() bool {
	return n.bot != nil && n.chat != 0
}
