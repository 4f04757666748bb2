package local

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the read side of the block store.
	Store interface {
		Tip() (uint64, chainhash.Hash, error)
		HeightOf(hash chainhash.Hash) (uint64, error)
		Header(height uint64) (*wire.BlockHeader, error)
		HeaderByHash(hash chainhash.Hash) (*wire.BlockHeader, uint64, error)
		Block(height uint64) (*wire.MsgBlock, error)
		BlockByHash(hash chainhash.Hash) (*wire.MsgBlock, uint64, error)
		Transaction(hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error)
		Output(point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error)
	}
)
