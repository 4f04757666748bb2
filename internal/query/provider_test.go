package query

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/chain/chaintest"
)

// chainProvider answers queries from a fixture chain on a fresh goroutine
// per request.
type chainProvider struct {
	chain *chaintest.Chain
	pool  map[chainhash.Hash]*wire.MsgTx
	wg    sync.WaitGroup
}

func newChainProvider(c *chaintest.Chain, pool ...*wire.MsgTx) *chainProvider {
	p := &chainProvider{chain: c, pool: make(map[chainhash.Hash]*wire.MsgTx)}
	for _, tx := range pool {
		p.pool[tx.TxHash()] = tx
	}
	return p
}

func (p *chainProvider) async(run func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		run()
	}()
}

func (p *chainProvider) heightOf(hash chainhash.Hash) (uint64, bool) {
	for height := range p.chain.Blocks {
		if p.chain.Hash(uint64(height)) == hash {
			return uint64(height), true
		}
	}
	return 0, false
}

func (p *chainProvider) FetchLastHeight(handler chain.HeightHandler) {
	p.async(func() { handler(chain.Success, p.chain.Tip()) })
}

func (p *chainProvider) FetchBlockHeight(hash chainhash.Hash, handler chain.HeightHandler) {
	p.async(func() {
		height, ok := p.heightOf(hash)
		if !ok {
			handler(chain.NotFound, 0)
			return
		}
		handler(chain.Success, height)
	})
}

func (p *chainProvider) FetchBlockHeader(height uint64, handler chain.HeaderHandler) {
	p.async(func() {
		if height > p.chain.Tip() {
			handler(chain.NotFound, nil, 0)
			return
		}
		handler(chain.Success, &p.chain.Block(height).Header, height)
	})
}

func (p *chainProvider) FetchBlockHeaderByHash(hash chainhash.Hash, handler chain.HeaderHandler) {
	p.async(func() {
		height, ok := p.heightOf(hash)
		if !ok {
			handler(chain.NotFound, nil, 0)
			return
		}
		handler(chain.Success, &p.chain.Block(height).Header, height)
	})
}

func (p *chainProvider) FetchBlock(height uint64, handler chain.BlockHandler) {
	p.async(func() {
		if height > p.chain.Tip() {
			handler(chain.NotFound, nil, 0)
			return
		}
		handler(chain.Success, p.chain.Block(height), height)
	})
}

func (p *chainProvider) FetchBlockByHash(hash chainhash.Hash, handler chain.BlockHandler) {
	p.async(func() {
		height, ok := p.heightOf(hash)
		if !ok {
			handler(chain.NotFound, nil, 0)
			return
		}
		handler(chain.Success, p.chain.Block(height), height)
	})
}

func (p *chainProvider) FetchTransaction(hash chainhash.Hash, requireConfirmed bool, handler chain.TransactionHandler) {
	p.async(func() {
		tx, height, position, ok := p.transaction(hash, requireConfirmed)
		if !ok {
			handler(chain.NotFound, nil, 0, 0)
			return
		}
		handler(chain.Success, tx, height, position)
	})
}

func (p *chainProvider) FetchOutput(point wire.OutPoint, requireConfirmed bool, handler chain.OutputHandler) {
	p.async(func() {
		tx, _, _, ok := p.transaction(point.Hash, requireConfirmed)
		if !ok || int(point.Index) >= len(tx.TxOut) {
			handler(chain.NotFound, nil)
			return
		}
		handler(chain.Success, tx.TxOut[point.Index])
	})
}

func (p *chainProvider) transaction(hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, bool) {
	for height, block := range p.chain.Blocks {
		for position, tx := range block.Transactions {
			if tx.TxHash() == hash {
				return tx, uint64(height), uint64(position), true
			}
		}
	}
	if tx, ok := p.pool[hash]; ok && !requireConfirmed {
		return tx, chain.Unconfirmed, chain.Unconfirmed, true
	}
	return nil, 0, 0, false
}
