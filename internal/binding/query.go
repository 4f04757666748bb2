package binding

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// Handlers receiving registered payloads. The receiver owns every non-null
// handle it is given.
type (
	HeaderHandler      func(code chain.Code, header handle.Handle, height uint64)
	BlockHandler       func(code chain.Code, block handle.Handle, height uint64)
	TransactionHandler func(code chain.Code, tx handle.Handle, height, position uint64)
	OutputHandler      func(code chain.Code, output handle.Handle)
)

// GetLastHeight blocks until the height of the chain tip is known.
func (r *Registry) GetLastHeight(exec handle.Handle) (chain.Code, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0
	}
	height, err := q.GetLastHeight(context.Background())
	return chain.CodeOf(err), height
}

// FetchLastHeight reports the height of the chain tip to handler.
func (r *Registry) FetchLastHeight(exec handle.Handle, handler chain.HeightHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0)
		return
	}
	q.FetchLastHeight(handler)
}

// GetBlockHeight blocks until the height of the block with hash is known.
func (r *Registry) GetBlockHeight(exec handle.Handle, hash chainhash.Hash) (chain.Code, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0
	}
	height, err := q.GetBlockHeight(context.Background(), hash)
	return chain.CodeOf(err), height
}

// FetchBlockHeight reports the height of the block with hash to handler.
func (r *Registry) FetchBlockHeight(exec handle.Handle, hash chainhash.Hash, handler chain.HeightHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0)
		return
	}
	q.FetchBlockHeight(hash, handler)
}

// GetBlockHeader blocks until the header at height is available.
func (r *Registry) GetBlockHeader(exec handle.Handle, height uint64) (chain.Code, handle.Handle, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0, 0
	}
	header, height, err := q.GetBlockHeader(context.Background(), height)
	return r.header(chain.CodeOf(err), header, height)
}

// FetchBlockHeader reports the header at height to handler.
func (r *Registry) FetchBlockHeader(exec handle.Handle, height uint64, handler HeaderHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0, 0)
		return
	}
	q.FetchBlockHeader(height, r.headerHandler(handler))
}

// GetBlockHeaderByHash blocks until the header with hash is available.
func (r *Registry) GetBlockHeaderByHash(exec handle.Handle, hash chainhash.Hash) (chain.Code, handle.Handle, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0, 0
	}
	header, height, err := q.GetBlockHeaderByHash(context.Background(), hash)
	return r.header(chain.CodeOf(err), header, height)
}

// FetchBlockHeaderByHash reports the header with hash to handler.
func (r *Registry) FetchBlockHeaderByHash(exec handle.Handle, hash chainhash.Hash, handler HeaderHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0, 0)
		return
	}
	q.FetchBlockHeaderByHash(hash, r.headerHandler(handler))
}

// GetBlock blocks until the block at height is available.
func (r *Registry) GetBlock(exec handle.Handle, height uint64) (chain.Code, handle.Handle, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0, 0
	}
	block, height, err := q.GetBlock(context.Background(), height)
	return r.block(chain.CodeOf(err), block, height)
}

// FetchBlock reports the block at height to handler.
func (r *Registry) FetchBlock(exec handle.Handle, height uint64, handler BlockHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0, 0)
		return
	}
	q.FetchBlock(height, r.blockHandler(handler))
}

// GetBlockByHash blocks until the block with hash is available.
func (r *Registry) GetBlockByHash(exec handle.Handle, hash chainhash.Hash) (chain.Code, handle.Handle, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0, 0
	}
	block, height, err := q.GetBlockByHash(context.Background(), hash)
	return r.block(chain.CodeOf(err), block, height)
}

// FetchBlockByHash reports the block with hash to handler.
func (r *Registry) FetchBlockByHash(exec handle.Handle, hash chainhash.Hash, handler BlockHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0, 0)
		return
	}
	q.FetchBlockByHash(hash, r.blockHandler(handler))
}

// GetTransaction blocks until the transaction with hash is available.
func (r *Registry) GetTransaction(exec handle.Handle, hash chainhash.Hash, requireConfirmed bool) (chain.Code, handle.Handle, uint64, uint64) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0, 0, 0
	}
	tx, height, position, err := q.GetTransaction(context.Background(), hash, requireConfirmed)
	if err != nil {
		return chain.CodeOf(err), 0, 0, 0
	}
	return chain.Success, r.transactions.Put(tx), height, position
}

// FetchTransaction reports the transaction with hash to handler.
func (r *Registry) FetchTransaction(exec handle.Handle, hash chainhash.Hash, requireConfirmed bool, handler TransactionHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0, 0, 0)
		return
	}
	q.FetchTransaction(hash, requireConfirmed, func(code chain.Code, tx *wire.MsgTx, height, position uint64) {
		handler(code, putOr(r.transactions, tx, code == chain.Success), height, position)
	})
}

// GetOutput blocks until the output referenced by point is available.
func (r *Registry) GetOutput(exec handle.Handle, point wire.OutPoint, requireConfirmed bool) (chain.Code, handle.Handle) {
	q, code := r.querier(exec)
	if code != chain.Success {
		return code, 0
	}
	output, err := q.GetOutput(context.Background(), point, requireConfirmed)
	if err != nil {
		return chain.CodeOf(err), 0
	}
	return chain.Success, r.outputs.Put(output)
}

// FetchOutput reports the output referenced by point to handler.
func (r *Registry) FetchOutput(exec handle.Handle, point wire.OutPoint, requireConfirmed bool, handler OutputHandler) {
	q, code := r.querier(exec)
	if code != chain.Success {
		handler(code, 0)
		return
	}
	q.FetchOutput(point, requireConfirmed, func(code chain.Code, output *wire.TxOut) {
		handler(code, putOr(r.outputs, output, code == chain.Success))
	})
}

func (r *Registry) header(code chain.Code, header *wire.BlockHeader, height uint64) (chain.Code, handle.Handle, uint64) {
	if code != chain.Success {
		return code, 0, 0
	}
	return code, r.headers.Put(header), height
}

func (r *Registry) block(code chain.Code, block *wire.MsgBlock, height uint64) (chain.Code, handle.Handle, uint64) {
	if code != chain.Success {
		return code, 0, 0
	}
	return code, r.blocks.Put(block), height
}

func (r *Registry) headerHandler(handler HeaderHandler) chain.HeaderHandler {
	return func(code chain.Code, header *wire.BlockHeader, height uint64) {
		handler(code, putOr(r.headers, header, code == chain.Success), height)
	}
}

func (r *Registry) blockHandler(handler BlockHandler) chain.BlockHandler {
	return func(code chain.Code, block *wire.MsgBlock, height uint64) {
		handler(code, putOr(r.blocks, block, code == chain.Success), height)
	}
}
