package entities

import (
	"math/big"
	"time"
)

// TokenEvent is a token upgrade or downgrade event as indexed by the subgraph.
type TokenEvent struct {
	ID              string
	TransactionHash string
	Token           string
	Account         string
	Amount          *big.Int
	BlockNumber     uint64
	Timestamp       time.Time
}
