// Package dto contains data transfer objects for webhook payloads, subgraph responses and chat messages.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
)

// WebhookJobInput is the validated result of parsing a webhook payload.
type WebhookJobInput struct {
	TokenAddress string
	BlockNumber  uint64
}

// jsonObject is one level of the address-activity payload. A nil jsonObject
// means the level is absent or has a different JSON type.
type jsonObject map[string]json.RawMessage

func asObject(raw json.RawMessage) jsonObject {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func (o jsonObject) object(key string) jsonObject {
	if o == nil {
		return nil
	}
	return asObject(o[key])
}

func (o jsonObject) firstElement(key string) jsonObject {
	if o == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(o[key], &items); err != nil || len(items) == 0 {
		return nil
	}
	return asObject(items[0])
}

func (o jsonObject) str(key string) string {
	if o == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(o[key], &s); err != nil {
		return ""
	}
	return s
}

// ParseWebhookPayload extracts the token address and block number from body.
// Only invalid JSON or a top-level value other than an object (or null) returns
// ErrMalformedPayload. Any level of event.data.block.logs[0].transaction.to.address
// that is absent or of another type yields (nil, nil).
func ParseWebhookPayload(body []byte) (*WebhookJobInput, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrMalformedPayload, err)
	}

	block := payloadBlock(root)
	address := strings.TrimSpace(block.firstElement("logs").object("transaction").object("to").str("address"))
	if address == "" {
		return nil, nil
	}

	input := &WebhookJobInput{TokenAddress: address}
	if n, ok := blockNumber(block); ok {
		input.BlockNumber = n
	}
	return input, nil
}

// BlockNumberHint returns the block number for logging, or nil when absent.
func BlockNumberHint(body []byte) *uint64 {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil
	}
	n, ok := blockNumber(payloadBlock(root))
	if !ok {
		return nil
	}
	return &n
}

func payloadBlock(root map[string]json.RawMessage) jsonObject {
	return jsonObject(root).object("event").object("data").object("block")
}

// blockNumber accepts a JSON number or a numeric string (decimal or 0x-prefixed).
// Anything else is reported as absent.
func blockNumber(block jsonObject) (uint64, bool) {
	if block == nil {
		return 0, false
	}
	raw := strings.TrimSpace(string(block["number"]))
	if raw == "" || raw == "null" {
		return 0, false
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(s)
	}
	v, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
