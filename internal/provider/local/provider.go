// Package local answers chain queries from the embedded block store.
package local

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/blockstore"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/provider"
	"go.uber.org/zap"
)

// Provider implements query.Provider over a Store.
type Provider struct {
	store      Store
	dispatcher *provider.Dispatcher
	logger     *zap.Logger
}

// New constructs a Provider that runs lookups on dispatcher.
func New(store Store, dispatcher *provider.Dispatcher, logger *zap.Logger) *Provider {
	return &Provider{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger.Named("local_provider"),
	}
}

func (p *Provider) code(operation string, err error) chain.Code {
	switch {
	case err == nil:
		return chain.Success
	case errors.Is(err, blockstore.ErrNotFound):
		return chain.NotFound
	case errors.Is(err, blockstore.ErrNotInitialized):
		return chain.ServiceStopped
	}
	p.logger.Error("store lookup failed", zap.String("operation", operation), zap.Error(err))
	return chain.OperationFailed
}

func (p *Provider) FetchLastHeight(handler chain.HeightHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		height, _, err := p.store.Tip()
		if complete() {
			handler(p.code("tip", err), height)
		}
	}, func(code chain.Code) {
		handler(code, 0)
	})
}

func (p *Provider) FetchBlockHeight(hash chainhash.Hash, handler chain.HeightHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		height, err := p.store.HeightOf(hash)
		if complete() {
			handler(p.code("height_of", err), height)
		}
	}, func(code chain.Code) {
		handler(code, 0)
	})
}

func (p *Provider) FetchBlockHeader(height uint64, handler chain.HeaderHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		header, err := p.store.Header(height)
		if complete() {
			handler(p.code("header", err), header, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlockHeaderByHash(hash chainhash.Hash, handler chain.HeaderHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		header, height, err := p.store.HeaderByHash(hash)
		if complete() {
			handler(p.code("header_by_hash", err), header, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlock(height uint64, handler chain.BlockHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		block, err := p.store.Block(height)
		if complete() {
			handler(p.code("block", err), block, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchBlockByHash(hash chainhash.Hash, handler chain.BlockHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		block, height, err := p.store.BlockByHash(hash)
		if complete() {
			handler(p.code("block_by_hash", err), block, height)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0)
	})
}

func (p *Provider) FetchTransaction(hash chainhash.Hash, requireConfirmed bool, handler chain.TransactionHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		tx, height, position, err := p.store.Transaction(hash, requireConfirmed)
		if complete() {
			handler(p.code("transaction", err), tx, height, position)
		}
	}, func(code chain.Code) {
		handler(code, nil, 0, 0)
	})
}

func (p *Provider) FetchOutput(point wire.OutPoint, requireConfirmed bool, handler chain.OutputHandler) {
	p.dispatcher.Submit(func(complete func() bool) {
		output, err := p.store.Output(point, requireConfirmed)
		if complete() {
			handler(p.code("output", err), output)
		}
	}, func(code chain.Code) {
		handler(code, nil)
	})
}
