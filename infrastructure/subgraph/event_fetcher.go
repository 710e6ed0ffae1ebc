package subgraph

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ngmachado/web3-hooks/domain/dto"
	"github.com/ngmachado/web3-hooks/domain/entities"
	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// Entity collections exposed by the protocol subgraph.
const (
	upgradedCollection   = "tokenUpgradedEvents"
	downgradedCollection = "tokenDowngradedEvents"
)

const tokenEventsQueryTemplate = `query %[1]s($token: Bytes!, $minAmount: BigInt!, $blockNumber: BigInt!) {
  %[2]s(
    where: { token: $token, amount_gte: $minAmount, blockNumber_gte: $blockNumber }
    orderBy: blockNumber
    orderDirection: asc
  ) {
    id
    transactionHash
    timestamp
    blockNumber
    token
    amount
    account {
      id
    }
  }
}`

var (
	upgradedEventsQuery   = fmt.Sprintf(tokenEventsQueryTemplate, "TokenUpgradedEvents", upgradedCollection)
	downgradedEventsQuery = fmt.Sprintf(tokenEventsQueryTemplate, "TokenDowngradedEvents", downgradedCollection)
)

// eventFetcher implements the EventFetcher interface on top of a query client.
type eventFetcher struct {
	client interfaces.EventQueryClient
	logger interfaces.Logger
}

// NewEventFetcher creates a new token wrap event fetcher.
func NewEventFetcher(client interfaces.EventQueryClient, logger interfaces.Logger) interfaces.EventFetcher {
	return &eventFetcher{
		client: client,
		logger: logger,
	}
}

// FetchUpgradedEvents returns upgrade events for token since blockNumber with amount >= minAmount.
func (f *eventFetcher) FetchUpgradedEvents(
	ctx context.Context,
	tokenAddress, minAmount string,
	blockNumber uint64,
) ([]entities.TokenEvent, error) {
	return f.fetch(ctx, upgradedCollection, upgradedEventsQuery, tokenAddress, minAmount, blockNumber)
}

// FetchDowngradedEvents returns downgrade events for token since blockNumber with amount >= minAmount.
func (f *eventFetcher) FetchDowngradedEvents(
	ctx context.Context,
	tokenAddress, minAmount string,
	blockNumber uint64,
) ([]entities.TokenEvent, error) {
	return f.fetch(ctx, downgradedCollection, downgradedEventsQuery, tokenAddress, minAmount, blockNumber)
}

func (f *eventFetcher) fetch(
	ctx context.Context,
	collection, query string,
	tokenAddress, minAmount string,
	blockNumber uint64,
) ([]entities.TokenEvent, error) {
	// Bytes fields are stored lower-cased by the subgraph.
	variables := map[string]interface{}{
		"token":       strings.ToLower(tokenAddress),
		"minAmount":   minAmount,
		"blockNumber": strconv.FormatUint(blockNumber, 10),
	}

	var data map[string][]dto.TokenEventRow
	if err := f.client.Query(ctx, query, variables, &data); err != nil {
		return nil, &domainerrors.QueryError{
			Operation:    collection,
			TokenAddress: tokenAddress,
			BlockNumber:  blockNumber,
			Err:          err,
		}
	}

	rows := data[collection]
	events := make([]entities.TokenEvent, 0, len(rows))
	for _, row := range rows {
		event, err := toTokenEvent(row)
		if err != nil {
			return nil, &domainerrors.QueryError{
				Operation:    collection,
				TokenAddress: tokenAddress,
				BlockNumber:  blockNumber,
				Err:          err,
			}
		}
		events = append(events, event)
	}

	f.logger.Debug("Fetched token events",
		"collection", collection,
		"token", tokenAddress,
		"fromBlock", blockNumber,
		"count", len(events))

	return events, nil
}

// toTokenEvent converts a subgraph row with string-encoded BigInts into a TokenEvent.
func toTokenEvent(row dto.TokenEventRow) (entities.TokenEvent, error) {
	amount, ok := new(big.Int).SetString(row.Amount, 10)
	if !ok {
		return entities.TokenEvent{}, fmt.Errorf("event %s: invalid amount %q", row.ID, row.Amount)
	}

	blockNumber, err := strconv.ParseUint(row.BlockNumber, 10, 64)
	if err != nil {
		return entities.TokenEvent{}, fmt.Errorf("event %s: invalid block number %q: %w", row.ID, row.BlockNumber, err)
	}

	seconds, err := strconv.ParseInt(row.Timestamp, 10, 64)
	if err != nil {
		return entities.TokenEvent{}, fmt.Errorf("event %s: invalid timestamp %q: %w", row.ID, row.Timestamp, err)
	}

	return entities.TokenEvent{
		ID:              row.ID,
		TransactionHash: row.TransactionHash,
		Token:           row.Token,
		Account:         row.Account.ID,
		Amount:          amount,
		BlockNumber:     blockNumber,
		Timestamp:       time.Unix(seconds, 0).UTC(),
	}, nil
}
