package syncer

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

// refreshMempool mirrors the upstream pool: unknown transactions are added
// and pooled transactions the upstream dropped are removed.
func (s *Service) refreshMempool() {
	added, err := s.syncMempool()
	s.metrics.ObserveMempool(err, added)
	if err != nil {
		s.logger.Warn("mempool refresh failed", zap.Error(err))
		return
	}
	if added > 0 {
		s.logger.Debug("mempool refreshed", zap.Int("added", added))
	}
}

func (s *Service) syncMempool() (int, error) {
	hashes, err := s.upstream.GetRawMempool()
	if err != nil {
		return 0, fmt.Errorf("get raw mempool: %w", err)
	}

	live := make(map[chainhash.Hash]struct{}, len(hashes))
	var missing []*wire.MsgTx
	for _, hash := range hashes {
		live[*hash] = struct{}{}
		known, err := s.store.HasTransaction(*hash)
		if err != nil {
			return 0, err
		}
		if known {
			continue
		}
		tx, err := s.upstream.GetRawTransaction(hash)
		if err != nil {
			// evicted or mined between the two calls
			s.logger.Debug("pool transaction vanished", zap.Stringer("hash", hash), zap.Error(err))
			continue
		}
		missing = append(missing, tx)
	}

	pooled, err := s.store.PoolHashes()
	if err != nil {
		return 0, err
	}
	var stale []chainhash.Hash
	for _, hash := range pooled {
		if _, ok := live[hash]; !ok {
			stale = append(stale, hash)
		}
	}
	if len(stale) > 0 {
		if err := s.store.RemovePool(stale); err != nil {
			return 0, err
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}
	return s.store.AddPool(missing)
}
