package query

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider resolves chain queries asynchronously. Every call returns
	// immediately and fires its handler exactly once, usually from another
	// goroutine. Payloads passed to a handler are only valid for the
	// duration of the call.
	Provider interface {
		FetchLastHeight(handler chain.HeightHandler)
		FetchBlockHeight(hash chainhash.Hash, handler chain.HeightHandler)
		FetchBlockHeader(height uint64, handler chain.HeaderHandler)
		FetchBlockHeaderByHash(hash chainhash.Hash, handler chain.HeaderHandler)
		FetchBlock(height uint64, handler chain.BlockHandler)
		FetchBlockByHash(hash chainhash.Hash, handler chain.BlockHandler)
		FetchTransaction(hash chainhash.Hash, requireConfirmed bool, handler chain.TransactionHandler)
		FetchOutput(point wire.OutPoint, requireConfirmed bool, handler chain.OutputHandler)
	}

	// Metrics records completed queries.
	Metrics interface {
		Observe(operation string, code chain.Code, started time.Time)
	}
)
