package query

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
)

type result[T any] struct {
	code  chain.Code
	value T
}

type located[T any] struct {
	payload  T
	height   uint64
	position uint64
}

// await issues a request and blocks until its single completion arrives or
// ctx ends. The signal is buffered so a completion that loses the race
// against ctx never blocks the provider.
func await[T any](ctx context.Context, issue func(done chan<- result[T])) (T, error) {
	done := make(chan result[T], 1)
	issue(done)

	var zero T
	select {
	case r := <-done:
		if r.code != chain.Success {
			return zero, r.code
		}
		return r.value, nil
	case <-ctx.Done():
		return zero, chain.CodeOf(ctx.Err())
	}
}

// GetLastHeight returns the height of the chain tip.
func (q *Querier) GetLastHeight(ctx context.Context) (uint64, error) {
	return await(ctx, func(done chan<- result[uint64]) {
		q.FetchLastHeight(func(code chain.Code, height uint64) {
			done <- result[uint64]{code: code, value: height}
		})
	})
}

// GetBlockHeight returns the height of the block with hash.
func (q *Querier) GetBlockHeight(ctx context.Context, hash chainhash.Hash) (uint64, error) {
	return await(ctx, func(done chan<- result[uint64]) {
		q.FetchBlockHeight(hash, func(code chain.Code, height uint64) {
			done <- result[uint64]{code: code, value: height}
		})
	})
}

// GetBlockHeader returns the header at height.
func (q *Querier) GetBlockHeader(ctx context.Context, height uint64) (*wire.BlockHeader, uint64, error) {
	r, err := await(ctx, func(done chan<- result[located[*wire.BlockHeader]]) {
		q.FetchBlockHeader(height, headerSignal(done))
	})
	return r.payload, r.height, err
}

// GetBlockHeaderByHash returns the header with hash and its height.
func (q *Querier) GetBlockHeaderByHash(ctx context.Context, hash chainhash.Hash) (*wire.BlockHeader, uint64, error) {
	r, err := await(ctx, func(done chan<- result[located[*wire.BlockHeader]]) {
		q.FetchBlockHeaderByHash(hash, headerSignal(done))
	})
	return r.payload, r.height, err
}

// GetBlock returns the block at height.
func (q *Querier) GetBlock(ctx context.Context, height uint64) (*wire.MsgBlock, uint64, error) {
	r, err := await(ctx, func(done chan<- result[located[*wire.MsgBlock]]) {
		q.FetchBlock(height, blockSignal(done))
	})
	return r.payload, r.height, err
}

// GetBlockByHash returns the block with hash and its height.
func (q *Querier) GetBlockByHash(ctx context.Context, hash chainhash.Hash) (*wire.MsgBlock, uint64, error) {
	r, err := await(ctx, func(done chan<- result[located[*wire.MsgBlock]]) {
		q.FetchBlockByHash(hash, blockSignal(done))
	})
	return r.payload, r.height, err
}

// GetTransaction returns the transaction with hash, its block height and
// its position in the block.
func (q *Querier) GetTransaction(ctx context.Context, hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error) {
	r, err := await(ctx, func(done chan<- result[located[*wire.MsgTx]]) {
		q.FetchTransaction(hash, requireConfirmed, func(code chain.Code, tx *wire.MsgTx, height, position uint64) {
			done <- result[located[*wire.MsgTx]]{code: code, value: located[*wire.MsgTx]{payload: tx, height: height, position: position}}
		})
	})
	return r.payload, r.height, r.position, err
}

// GetOutput returns the output referenced by point.
func (q *Querier) GetOutput(ctx context.Context, point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error) {
	return await(ctx, func(done chan<- result[*wire.TxOut]) {
		q.FetchOutput(point, requireConfirmed, func(code chain.Code, output *wire.TxOut) {
			done <- result[*wire.TxOut]{code: code, value: output}
		})
	})
}

func headerSignal(done chan<- result[located[*wire.BlockHeader]]) chain.HeaderHandler {
	return func(code chain.Code, header *wire.BlockHeader, height uint64) {
		done <- result[located[*wire.BlockHeader]]{code: code, value: located[*wire.BlockHeader]{payload: header, height: height}}
	}
}

func blockSignal(done chan<- result[located[*wire.MsgBlock]]) chain.BlockHandler {
	return func(code chain.Code, block *wire.MsgBlock, height uint64) {
		done <- result[located[*wire.MsgBlock]]{code: code, value: located[*wire.MsgBlock]{payload: block, height: height}}
	}
}
