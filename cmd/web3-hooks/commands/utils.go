package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ngmachado/web3-hooks/domain/dto"
	"github.com/ngmachado/web3-hooks/domain/entities"
)

// parseBlockNumber accepts decimal or 0x-prefixed block numbers.
func parseBlockNumber(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q: %w", s, err)
	}
	return n, nil
}

func amountString(b entities.BigInt) string {
	if b.Int == nil {
		return "0"
	}
	return b.String()
}

func toEventViews(events []entities.TokenEvent) []dto.TokenEventView {
	views := make([]dto.TokenEventView, 0, len(events))
	for _, e := range events {
		view := dto.TokenEventView{
			TransactionHash: e.TransactionHash,
			Token:           e.Token,
			Account:         e.Account,
			Amount:          amountString(entities.NewBigInt(e.Amount)),
			BlockNumber:     e.BlockNumber,
		}
		if !e.Timestamp.IsZero() {
			view.Timestamp = e.Timestamp.UTC().Format(time.RFC3339)
		}
		views = append(views, view)
	}
	return views
}

func toDeliveryViews(deliveries []entities.Delivery) []dto.DeliveryView {
	views := make([]dto.DeliveryView, 0, len(deliveries))
	for _, d := range deliveries {
		views = append(views, dto.DeliveryView{
			ID:              d.ID,
			TokenAddress:    d.TokenAddress,
			EventType:       d.EventType.String(),
			TransactionHash: d.TransactionHash,
			Account:         d.Account,
			Amount:          amountString(d.Amount),
			BlockNumber:     d.BlockNumber,
			SentAt:          d.SentAt.UTC().Format(time.RFC3339),
		})
	}
	return views
}
