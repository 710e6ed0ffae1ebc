package dto

import "encoding/json"

// GraphQLRequest is the body posted to the subgraph endpoint.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse is the envelope returned by the subgraph endpoint.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one entry of the errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// TokenEventRow is a token upgrade/downgrade event as serialized by the subgraph.
// BigInt fields arrive as decimal strings.
type TokenEventRow struct {
	ID              string     `json:"id"`
	TransactionHash string     `json:"transactionHash"`
	Timestamp       string     `json:"timestamp"`
	BlockNumber     string     `json:"blockNumber"`
	Token           string     `json:"token"`
	Amount          string     `json:"amount"`
	Account         AccountRef `json:"account"`
}

// AccountRef is a nested account entity reference.
type AccountRef struct {
	ID string `json:"id"`
}

// DeliveryView is the CLI representation of a stored delivery.
type DeliveryView struct {
	ID              string `json:"id" yaml:"id"`
	TokenAddress    string `json:"token_address" yaml:"token_address"`
	EventType       string `json:"event_type" yaml:"event_type"`
	TransactionHash string `json:"transaction_hash" yaml:"transaction_hash"`
	Account         string `json:"account" yaml:"account"`
	Amount          string `json:"amount" yaml:"amount"`
	BlockNumber     uint64 `json:"block_number" yaml:"block_number"`
	SentAt          string `json:"sent_at" yaml:"sent_at"`
}

// TokenEventView is the CLI representation of a fetched event.
type TokenEventView struct {
	TransactionHash string `json:"transaction_hash" yaml:"transaction_hash"`
	Token           string `json:"token" yaml:"token"`
	Account         string `json:"account" yaml:"account"`
	Amount          string `json:"amount" yaml:"amount"`
	BlockNumber     uint64 `json:"block_number" yaml:"block_number"`
	Timestamp       string `json:"timestamp" yaml:"timestamp"`
}
