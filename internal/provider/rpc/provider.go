// Package rpc answers chain queries by forwarding them to an upstream node
// over JSON-RPC. Node error codes are reported unchanged.
package rpc

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/provider"
	"github.com/goodnatureofminers/chainexec/pkg/safe"
	"go.uber.org/zap"
)

// Provider implements query.Provider over an upstream node.
type Provider struct {
	client     RPCClient
	dispatcher *provider.Dispatcher
	logger     *zap.Logger
}

// New constructs a Provider that issues node calls on dispatcher.
func New(client RPCClient, dispatcher *provider.Dispatcher, logger *zap.Logger) *Provider {
	return &Provider{
		client:     client,
		dispatcher: dispatcher,
		logger:     logger.Named("rpc_provider"),
	}
}

// codeOf keeps node error codes and maps everything else to
// chain.OperationFailed.
func (p *Provider) codeOf(operation string, err error) chain.Code {
	if err == nil {
		return chain.Success
	}
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return chain.Code(rpcErr.Code)
	}
	var code chain.Code
	if errors.As(err, &code) {
		return code
	}
	p.logger.Warn("upstream call failed", zap.String("operation", operation), zap.Error(err))
	return chain.OperationFailed
}

func (p *Provider) FetchLastHeight(handler chain.HeightHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		height, err := p.lastHeight()
		if complete() {
			handler(p.codeOf("last_height", err), height)
		}
	}, func(code chain.Code) {
		handler(code, 0)
	})
}

func (p *Provider) FetchBlockHeight(hash chainhash.Hash, handler chain.HeightHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		height, err := p.heightOf(&hash)
		if complete() {
			handler(p.codeOf("block_height", err), height)
		}
	}, func(code chain.Code) {
		handler(code, 0)
	})
}

func (p *Provider) FetchBlockHeader(height uint64, handler chain.HeaderHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		header, err := p.headerAt(height)
		if complete() {
			handler(p.codeOf("block_header", err), header, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlockHeaderByHash(hash chainhash.Hash, handler chain.HeaderHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		header, height, err := p.headerByHash(&hash)
		if complete() {
			handler(p.codeOf("block_header_by_hash", err), header, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlock(height uint64, handler chain.BlockHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		block, err := p.blockAt(height)
		if complete() {
			handler(p.codeOf("block", err), block, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlockByHash(hash chainhash.Hash, handler chain.BlockHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		block, height, err := p.blockByHash(&hash)
		if complete() {
			handler(p.codeOf("block_by_hash", err), block, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchTransaction(hash chainhash.Hash, requireConfirmed bool, handler chain.TransactionHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		tx, height, position, err := p.transaction(&hash, requireConfirmed)
		if complete() {
			handler(p.codeOf("transaction", err), tx, height, position)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0, 0)
	})
}

func (p *Provider) FetchOutput(point wire.OutPoint, requireConfirmed bool, handler chain.OutputHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		output, err := p.output(point, requireConfirmed)
		if complete() {
			handler(p.codeOf("output", err), output)
		}
	}, func(code chain.Code) {
		handler(code, nil)
	})
}

func (p *Provider) lastHeight() (uint64, error) {
	count, err := p.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Uint64(count)
}

func (p *Provider) heightOf(hash *chainhash.Hash) (uint64, error) {
	res, err := p.client.GetBlockHeaderVerbose(hash)
	if err != nil {
		return 0, fmt.Errorf("get block header %s: %w", hash, err)
	}
	// stale branches report negative confirmations
	if res.Confirmations < 0 {
		return 0, chain.NotFound
	}
	return safe.Uint64(res.Height)
}

func (p *Provider) hashAt(height uint64) (*chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, chain.NotFound
	}
	hash, err := p.client.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}

func (p *Provider) headerAt(height uint64) (*wire.BlockHeader, error) {
	hash, err := p.hashAt(height)
	if err != nil {
		return nil, err
	}
	header, err := p.client.GetBlockHeader(hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, err)
	}
	return header, nil
}

func (p *Provider) headerByHash(hash *chainhash.Hash) (*wire.BlockHeader, uint64, error) {
	height, err := p.heightOf(hash)
	if err != nil {
		return nil, 0, err
	}
	header, err := p.client.GetBlockHeader(hash)
	if err != nil {
		return nil, 0, fmt.Errorf("get block header %s: %w", hash, err)
	}
	return header, height, nil
}

func (p *Provider) blockAt(height uint64) (*wire.MsgBlock, error) {
	hash, err := p.hashAt(height)
	if err != nil {
		return nil, err
	}
	block, err := p.client.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}

func (p *Provider) blockByHash(hash *chainhash.Hash) (*wire.MsgBlock, uint64, error) {
	height, err := p.heightOf(hash)
	if err != nil {
		return nil, 0, err
	}
	block, err := p.client.GetBlock(hash)
	if err != nil {
		return nil, 0, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, height, nil
}

func (p *Provider) transaction(hash *chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error) {
	res, err := p.client.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("get raw transaction %s: %w", hash, err)
	}
	tx, err := decodeTx(res.Hex)
	if err != nil {
		return nil, 0, 0, err
	}
	if res.BlockHash == "" {
		if requireConfirmed {
			return nil, 0, 0, chain.NotFound
		}
		return tx, chain.Unconfirmed, chain.Unconfirmed, nil
	}

	blockHash, err := chainhash.NewHashFromStr(res.BlockHash)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("parse block hash %q: %w", res.BlockHash, err)
	}
	block, err := p.client.GetBlockVerbose(blockHash)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("get block %s: %w", blockHash, err)
	}
	if block.Confirmations < 0 {
		return nil, 0, 0, chain.NotFound
	}
	height, err := safe.Uint64(block.Height)
	if err != nil {
		return nil, 0, 0, err
	}
	txid := hash.String()
	for position, id := range block.Tx {
		if id == txid {
			return tx, height, uint64(position), nil
		}
	}
	return nil, 0, 0, fmt.Errorf("transaction %s missing from block %s", txid, blockHash)
}

// output prefers the node's unspent set and falls back to the creating
// transaction for spent outputs.
func (p *Provider) output(point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error) {
	res, err := p.client.GetTxOut(&point.Hash, point.Index, !requireConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get tx out %s: %w", point, err)
	}
	if res != nil {
		amount, err := btcutil.NewAmount(res.Value)
		if err != nil {
			return nil, fmt.Errorf("convert value of %s: %w", point, err)
		}
		script, err := hex.DecodeString(res.ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("decode script of %s: %w", point, err)
		}
		return wire.NewTxOut(int64(amount), script), nil
	}

	tx, _, _, err := p.transaction(&point.Hash, requireConfirmed)
	if err != nil {
		return nil, err
	}
	if int(point.Index) >= len(tx.TxOut) {
		return nil, chain.NotFound
	}
	return tx.TxOut[point.Index], nil
}

func decodeTx(raw string) (*wire.MsgTx, error) {
	serialized, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode transaction hex: %w", err)
	}
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(serialized)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return &tx, nil
}
