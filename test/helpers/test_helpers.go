// Package helpers provides shared fixtures for package tests.
package helpers

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"github.com/ngmachado/web3-hooks/infrastructure/logger"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// DiscardLogger returns a debug-level logger that writes nowhere
func DiscardLogger() interfaces.Logger {
	return logger.NewLogrusLoggerWithOutput("debug", io.Discard)
}

// RandomAddress generates a random Ethereum address for testing
func RandomAddress() common.Address {
	return common.HexToAddress("0x" + RandomHex(40))
}

// RandomHex generates a random hex string of the specified length
func RandomHex(length int) string {
	const hexChars = "0123456789abcdef"
	result := make([]byte, length)
	for i := range result {
		result[i] = hexChars[rand.Intn(len(hexChars))] // #nosec G404 -- test data
	}
	return string(result)
}

// RandomHash generates a random hash for testing
func RandomHash() common.Hash {
	return common.HexToHash("0x" + RandomHex(64))
}

// WebhookBody builds an indexer webhook payload for tokenAddress observed at blockNumber
func WebhookBody(tokenAddress string, blockNumber uint64) []byte {
	return []byte(fmt.Sprintf(
		`{"webhookId":"wh_test","type":"GRAPHQL","event":{"data":{"block":{"number":%d,"logs":[{"transaction":{"hash":"0x01","to":{"address":"%s"}}}]}}}}`,
		blockNumber, tokenAddress))
}

// SubgraphEventsResponse builds a subgraph response body with one collection of raw event rows
func SubgraphEventsResponse(collection string, rows ...string) string {
	return fmt.Sprintf(`{"data":{"%s":[%s]}}`, collection, strings.Join(rows, ","))
}

// SubgraphEventRow builds one raw event row as serialized by the subgraph
func SubgraphEventRow(id, txHash, token, account, amount string, blockNumber, timestamp int64) string {
	return fmt.Sprintf(
		`{"id":"%s","transactionHash":"%s","timestamp":"%d","blockNumber":"%d","token":"%s","amount":"%s","account":{"id":"%s"}}`,
		id, txHash, timestamp, blockNumber, token, amount, account)
}

// AssertEventually asserts that a condition is met within a timeout
func AssertEventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Fail(t, message)
}

// SkipIfShort skips the test if running in short mode
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping test in short mode")
	}
}
