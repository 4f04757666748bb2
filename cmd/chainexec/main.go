// Command chainexec runs a chain query node and queries running ones.
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

var options struct {
	Config string `short:"c" long:"config" env:"CHAINEXEC_CONFIG" default:"chainexec.cfg" description:"node configuration file"`
}

func main() {
	parser := flags.NewParser(&options, flags.Default)

	_, _ = parser.AddCommand("initchain", "Initialize the block store",
		"Create the block store and write the genesis block of the configured network.", &initchainCommand{})
	_, _ = parser.AddCommand("run", "Run the node",
		"Run the node until interrupted.", &runCommand{})

	query, _ := parser.AddCommand("query", "Query a running node",
		"Query a running node over gRPC and print the result as YAML.", &queryOptions)
	_, _ = query.AddCommand("last-height", "Height of the chain tip", "", &lastHeightCommand{})
	_, _ = query.AddCommand("block-height", "Height of a block by hash", "", &blockHeightCommand{})
	_, _ = query.AddCommand("header", "Block header by height or hash", "", &headerCommand{})
	_, _ = query.AddCommand("block", "Block by height or hash", "", &blockCommand{})
	_, _ = query.AddCommand("transaction", "Transaction by hash", "", &transactionCommand{})
	_, _ = query.AddCommand("output", "Transaction output by outpoint", "", &outputCommand{})

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
