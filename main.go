// Package main is the entry point for the web3 hooks service.
// It receives token upgrade/downgrade webhooks and relays matching events to chat.
package main

import (
	"os"

	"github.com/ngmachado/web3-hooks/cmd/web3-hooks/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
