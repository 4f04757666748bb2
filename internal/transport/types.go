package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

type (
	// Querier answers blocking chain queries.
	Querier interface {
		GetLastHeight(ctx context.Context) (uint64, error)
		GetBlockHeight(ctx context.Context, hash chainhash.Hash) (uint64, error)
		GetBlockHeader(ctx context.Context, height uint64) (*wire.BlockHeader, uint64, error)
		GetBlockHeaderByHash(ctx context.Context, hash chainhash.Hash) (*wire.BlockHeader, uint64, error)
		GetBlock(ctx context.Context, height uint64) (*wire.MsgBlock, uint64, error)
		GetBlockByHash(ctx context.Context, hash chainhash.Hash) (*wire.MsgBlock, uint64, error)
		GetTransaction(ctx context.Context, hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error)
		GetOutput(ctx context.Context, point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error)
	}
)
