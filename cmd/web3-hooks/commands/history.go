package commands

import (
	"errors"
	"fmt"

	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rt *Runtime) *cobra.Command {
	var (
		outputFormat string
		limit        int
		token        string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently delivered notifications",
		Long:  "Lists delivered notifications from the database, newest first. Requires database settings.",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--%s must be positive", limitFlag)
			}
			return ValidateFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := rt.Container.DeliveryRepository
			if repo == nil {
				return errors.New("delivery history requires a database (set database.host)")
			}

			var (
				deliveries []entities.Delivery
				err        error
			)
			if token != "" {
				deliveries, err = repo.FindByToken(cmd.Context(), token, limit)
			} else {
				deliveries, err = repo.FindRecent(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			return NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(toDeliveryViews(deliveries))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, outputFlag, "o", OutputFormatJSON, "output format (json, yaml)")
	cmd.Flags().IntVar(&limit, limitFlag, defaultHistory, "maximum number of deliveries to show")
	cmd.Flags().StringVar(&token, tokenFlag, "", "only show deliveries for this token address")

	return cmd
}
