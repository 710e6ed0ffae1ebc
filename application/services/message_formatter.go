// Package services contains application services for the web3 hooks pipeline:
// the chat message formatter and the deferred drain loop.
package services

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

var eventLabels = map[entities.EventType]string{
	entities.EventTypeUpgrade:   "🟢 Token Upgrade",
	entities.EventTypeDowngrade: "🔴 Token Downgrade",
}

// messageFormatter implements the MessageFormatter interface
type messageFormatter struct {
	explorerURL string
}

// NewMessageFormatter creates a formatter that links transactions on explorerURL.
func NewMessageFormatter(explorerURL string) interfaces.MessageFormatter {
	return &messageFormatter{
		explorerURL: strings.TrimRight(explorerURL, "/"),
	}
}

// Format renders event as a plain-text chat message.
func (f *messageFormatter) Format(event entities.TokenEvent, eventType entities.EventType) (string, error) {
	label, ok := eventLabels[eventType]
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownEventType, eventType)
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Token: %s\n", displayAddress(event.Token))
	fmt.Fprintf(&b, "Account: %s\n", displayAddress(event.Account))
	fmt.Fprintf(&b, "Amount: %s\n", FormatAmount(event.Amount))

	block := fmt.Sprintf("Block: %d", event.BlockNumber)
	if !event.Timestamp.IsZero() {
		block += " (" + event.Timestamp.UTC().Format(timestampLayout) + ")"
	}
	b.WriteString(block)

	if event.TransactionHash != "" {
		b.WriteString("\n")
		if f.explorerURL != "" {
			fmt.Fprintf(&b, "Tx: %s/tx/%s", f.explorerURL, event.TransactionHash)
		} else {
			fmt.Fprintf(&b, "Tx: %s", event.TransactionHash)
		}
	}

	return b.String(), nil
}

// FormatAmount scales a base-unit amount by 1e18 and renders it with thousands
// separators and at most two decimals. Extra decimals are truncated.
func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}

	whole, frac := new(big.Int).QuoRem(new(big.Int).Abs(amount), big.NewInt(params.Ether), new(big.Int))
	cents := frac.Quo(frac, big.NewInt(params.Ether/100)).Int64()

	out := humanize.BigComma(whole)
	switch {
	case cents == 0:
	case cents%10 == 0:
		out += fmt.Sprintf(".%d", cents/10)
	default:
		out += fmt.Sprintf(".%02d", cents)
	}

	if amount.Sign() < 0 && (whole.Sign() != 0 || cents != 0) {
		out = "-" + out
	}
	return out
}

// displayAddress returns the EIP-55 form of valid addresses and the raw value otherwise.
func displayAddress(addr string) string {
	if common.IsHexAddress(addr) {
		return common.HexToAddress(addr).Hex()
	}
	return addr
}
