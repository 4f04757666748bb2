package syncer

import (
	"errors"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain/chaintest"
)

var errUnknown = errors.New("unknown")

// chainUpstream serves a fixture chain that tests can swap out.
type chainUpstream struct {
	mu    sync.Mutex
	chain *chaintest.Chain
	pool  []*wire.MsgTx
}

func (u *chainUpstream) set(c *chaintest.Chain, pool ...*wire.MsgTx) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.chain = c
	u.pool = pool
}

func (u *chainUpstream) GetBlockCount() (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return int64(u.chain.Tip()), nil
}

func (u *chainUpstream) GetBlockHash(height int64) (*chainhash.Hash, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if height < 0 || uint64(height) > u.chain.Tip() {
		return nil, errUnknown
	}
	hash := u.chain.Hash(uint64(height))
	return &hash, nil
}

func (u *chainUpstream) GetBlock(hash *chainhash.Hash) (*wire.MsgBlock, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, block := range u.chain.Blocks {
		if block.BlockHash() == *hash {
			return block, nil
		}
	}
	return nil, errUnknown
}

func (u *chainUpstream) GetRawMempool() ([]*chainhash.Hash, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	hashes := make([]*chainhash.Hash, 0, len(u.pool))
	for _, tx := range u.pool {
		hash := tx.TxHash()
		hashes = append(hashes, &hash)
	}
	return hashes, nil
}

func (u *chainUpstream) GetRawTransaction(hash *chainhash.Hash) (*wire.MsgTx, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, tx := range u.pool {
		if tx.TxHash() == *hash {
			return tx, nil
		}
	}
	return nil, errUnknown
}
