package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngmachado/web3-hooks/application/usecases"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/spf13/cobra"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rt *Runtime) *cobra.Command {
	var (
		outputFormat string
		minAmount    string
		asMessages   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [upgrade|downgrade] [token] [from_block]",
		Short: "Query the subgraph for token events once",
		Long: `Runs the same subgraph query a queued job would, for the given event type,
token address and starting block, and prints the events or the chat messages
that would be sent. Nothing is delivered.`,
		Args: cobra.ExactArgs(3),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return ValidateFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eventType, err := entities.ParseEventType(args[0])
			if err != nil {
				return err
			}
			token := strings.TrimSpace(args[1])
			blockNumber, err := parseBlockNumber(args[2])
			if err != nil {
				return err
			}

			c := rt.Container
			if minAmount == "" {
				minAmount = c.Config.MinAmount
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			c.Logger.Info("Fetching events",
				"event_type", eventType.String(),
				"token", token,
				"block", blockNumber)

			events, err := usecases.FetchEvents(ctx, c.EventFetcher, eventType, token, minAmount, blockNumber)
			if err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}

			if asMessages {
				messages, err := usecases.FormatEvents(c.MessageFormatter, events, eventType)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for i, msg := range messages {
					if i > 0 {
						_, _ = fmt.Fprintln(out)
					}
					_, _ = fmt.Fprintln(out, msg)
				}
				return nil
			}

			return NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(toEventViews(events))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, outputFlag, "o", OutputFormatJSON, "output format (json, yaml)")
	cmd.Flags().StringVar(&minAmount, minAmountFlag, "", "minimum amount in base units (defaults to min_amount)")
	cmd.Flags().BoolVar(&asMessages, messagesFlag, false, "print formatted chat messages instead of raw events")

	return cmd
}
