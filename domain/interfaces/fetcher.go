package interfaces

import (
	"context"

	"github.com/ngmachado/web3-hooks/domain/entities"
)

// EventQueryClient issues parameterized queries against the indexed-data service.
type EventQueryClient interface {
	// Query runs a GraphQL query and decodes its data object into out.
	Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error
}

// EventFetcher resolves a job's parameters into token events.
type EventFetcher interface {
	// FetchUpgradedEvents returns upgrade events for token at or above minAmount since blockNumber.
	FetchUpgradedEvents(
		ctx context.Context,
		tokenAddress, minAmount string,
		blockNumber uint64,
	) ([]entities.TokenEvent, error)

	// FetchDowngradedEvents returns downgrade events for token at or above minAmount since blockNumber.
	FetchDowngradedEvents(
		ctx context.Context,
		tokenAddress, minAmount string,
		blockNumber uint64,
	) ([]entities.TokenEvent, error)
}

// MessageFormatter renders a token event as a chat message.
type MessageFormatter interface {
	Format(event entities.TokenEvent, eventType entities.EventType) (string, error)
}
