package syncer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Upstream is the node the syncer follows.
	Upstream interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetRawMempool() ([]*chainhash.Hash, error)
		GetRawTransaction(txHash *chainhash.Hash) (*wire.MsgTx, error)
	}
	// Store is the write side of the block store.
	Store interface {
		Tip() (uint64, chainhash.Hash, error)
		HashAt(height uint64) (chainhash.Hash, error)
		Connect(blocks []*wire.MsgBlock) error
		Disconnect() (*wire.MsgBlock, error)
		HasTransaction(hash chainhash.Hash) (bool, error)
		AddPool(txs []*wire.MsgTx) (int, error)
		PoolHashes() ([]chainhash.Hash, error)
		RemovePool(hashes []chainhash.Hash) error
	}
	// BlockWriter receives every connected block.
	BlockWriter interface {
		WriteBlock(ctx context.Context, block *wire.MsgBlock, height uint64) error
	}
	Metrics interface {
		ObserveConnect(err error, blocks int, started time.Time)
		ObserveDisconnect(blocks int)
		ObserveTip(height uint64)
		ObserveMempool(err error, added int)
	}
)
