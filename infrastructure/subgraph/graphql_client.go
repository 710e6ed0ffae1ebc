// Package subgraph queries the indexed protocol data served by The Graph.
// It contains a minimal GraphQL client and the token wrap event fetcher built on it.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ngmachado/web3-hooks/domain/dto"
	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"github.com/pkg/errors"
)

const maxResponseBytes = 8 << 20

// GraphQLClient posts queries to a single GraphQL endpoint.
type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	logger     interfaces.Logger
}

var _ interfaces.EventQueryClient = (*GraphQLClient)(nil)

// NewGraphQLClient creates a client for endpoint. A zero timeout leaves requests bounded only by ctx.
func NewGraphQLClient(endpoint string, timeout time.Duration, logger interfaces.Logger) *GraphQLClient {
	return &GraphQLClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Query runs query with variables and decodes the data object into out.
func (c *GraphQLClient) Query(
	ctx context.Context,
	query string,
	variables map[string]interface{},
	out interface{},
) error {
	if c.endpoint == "" {
		return &domainerrors.QueryError{Operation: "Query", Err: domainerrors.ErrNotConfigured}
	}

	payload, err := json.Marshal(dto.GraphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(err, "failed to marshal graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Querying subgraph", "endpoint", c.endpoint, "variables", variables)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domainerrors.QueryError{Operation: "Query", Err: errors.Wrap(err, "failed to send request")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domainerrors.QueryError{Operation: "Query", Err: errors.Wrap(err, "failed to read response")}
	}

	if resp.StatusCode != http.StatusOK {
		return &domainerrors.QueryError{
			Operation: "Query",
			Err:       fmt.Errorf("subgraph returned status %d: %s", resp.StatusCode, truncate(string(body), 256)),
		}
	}

	var envelope dto.GraphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &domainerrors.QueryError{Operation: "Query", Err: errors.Wrap(err, "failed to decode response")}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return &domainerrors.QueryError{Operation: "Query", Err: errors.New(strings.Join(messages, "; "))}
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &domainerrors.QueryError{Operation: "Query", Err: errors.Wrap(err, "failed to decode data")}
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
