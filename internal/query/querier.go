// Package query adapts an asynchronous chain query provider into blocking
// calls that return owned copies of the requested payloads.
package query

import (
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"go.uber.org/zap"
)

const (
	opLastHeight        = "last_height"
	opBlockHeight       = "block_height"
	opBlockHeader       = "block_header"
	opBlockHeaderByHash = "block_header_by_hash"
	opBlock             = "block"
	opBlockByHash       = "block_by_hash"
	opTransaction       = "transaction"
	opOutput            = "output"
)

// Querier exposes the query kinds of a Provider in callback (Fetch*) and
// blocking (Get*) form. Handlers receive payloads the caller owns; on
// failure payloads are nil and scalars zero.
type Querier struct {
	provider Provider
	metrics  Metrics
	logger   *zap.Logger
}

// New constructs a Querier over provider.
func New(provider Provider, metrics Metrics, logger *zap.Logger) *Querier {
	return &Querier{
		provider: provider,
		metrics:  metrics,
		logger:   logger.Named("query"),
	}
}

// FetchLastHeight reports the height of the chain tip.
func (q *Querier) FetchLastHeight(handler chain.HeightHandler) {
	complete := q.completion(opLastHeight)
	q.provider.FetchLastHeight(func(code chain.Code, height uint64) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			height = 0
		}
		handler(code, height)
	})
}

// FetchBlockHeight reports the height of the block with hash.
func (q *Querier) FetchBlockHeight(hash chainhash.Hash, handler chain.HeightHandler) {
	complete := q.completion(opBlockHeight)
	q.provider.FetchBlockHeight(hash, func(code chain.Code, height uint64) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			height = 0
		}
		handler(code, height)
	})
}

// FetchBlockHeader reports the header at height.
func (q *Querier) FetchBlockHeader(height uint64, handler chain.HeaderHandler) {
	q.provider.FetchBlockHeader(height, q.headerHandler(opBlockHeader, handler))
}

// FetchBlockHeaderByHash reports the header with hash and its height.
func (q *Querier) FetchBlockHeaderByHash(hash chainhash.Hash, handler chain.HeaderHandler) {
	q.provider.FetchBlockHeaderByHash(hash, q.headerHandler(opBlockHeaderByHash, handler))
}

// FetchBlock reports the block at height.
func (q *Querier) FetchBlock(height uint64, handler chain.BlockHandler) {
	q.provider.FetchBlock(height, q.blockHandler(opBlock, handler))
}

// FetchBlockByHash reports the block with hash and its height.
func (q *Querier) FetchBlockByHash(hash chainhash.Hash, handler chain.BlockHandler) {
	q.provider.FetchBlockByHash(hash, q.blockHandler(opBlockByHash, handler))
}

// FetchTransaction reports the transaction with hash together with its
// block height and position. Pool transactions are reported with
// chain.Unconfirmed unless requireConfirmed is set, in which case they are
// not found.
func (q *Querier) FetchTransaction(hash chainhash.Hash, requireConfirmed bool, handler chain.TransactionHandler) {
	complete := q.completion(opTransaction)
	q.provider.FetchTransaction(hash, requireConfirmed, func(code chain.Code, tx *wire.MsgTx, height, position uint64) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			handler(code, nil, 0, 0)
			return
		}
		handler(code, chain.CopyTransaction(tx), height, position)
	})
}

// FetchOutput reports the output referenced by point.
func (q *Querier) FetchOutput(point wire.OutPoint, requireConfirmed bool, handler chain.OutputHandler) {
	complete := q.completion(opOutput)
	q.provider.FetchOutput(point, requireConfirmed, func(code chain.Code, output *wire.TxOut) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			handler(code, nil)
			return
		}
		handler(code, chain.CopyOutput(output))
	})
}

func (q *Querier) headerHandler(operation string, handler chain.HeaderHandler) chain.HeaderHandler {
	complete := q.completion(operation)
	return func(code chain.Code, header *wire.BlockHeader, height uint64) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			handler(code, nil, 0)
			return
		}
		handler(code, chain.CopyHeader(header), height)
	}
}

func (q *Querier) blockHandler(operation string, handler chain.BlockHandler) chain.BlockHandler {
	complete := q.completion(operation)
	return func(code chain.Code, block *wire.MsgBlock, height uint64) {
		if !complete(code) {
			return
		}
		if code != chain.Success {
			handler(code, nil, 0)
			return
		}
		handler(code, chain.CopyBlock(block), height)
	}
}

// completion returns a guard that admits the first completion of a request
// and records it. Later completions are provider bugs and are dropped.
func (q *Querier) completion(operation string) func(code chain.Code) bool {
	started := time.Now()
	var fired atomic.Bool
	return func(code chain.Code) bool {
		if !fired.CompareAndSwap(false, true) {
			q.logger.Warn("duplicate completion ignored",
				zap.String("operation", operation),
				zap.Int("code", int(code)),
			)
			return false
		}
		q.metrics.Observe(operation, code, started)
		return true
	}
}
