package blockstore

import (
	"bytes"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	bolt "go.etcd.io/bbolt"
)

// Init stores genesis as the block at height zero.
func (s *Store) Init(genesis *wire.MsgBlock) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("init", err, started)
	}()

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(metaBucket).Get(tipKey) != nil {
			return ErrAlreadyInitialized
		}
		return putBlock(tx, genesis, 0)
	})
}

// Connect appends blocks to the chain in order. Each block must extend the
// current tip. Connected transactions leave the pool. Either all blocks are
// connected or none.
func (s *Store) Connect(blocks []*wire.MsgBlock) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("connect", err, started)
	}()

	return s.db.Update(func(tx *bolt.Tx) error {
		height, hash, err := tip(tx)
		if err != nil {
			return err
		}
		for _, block := range blocks {
			if block.Header.PrevBlock != hash {
				return fmt.Errorf("connect block %s at height %d: %w", block.BlockHash(), height+1, ErrOrphanBlock)
			}
			height++
			if err := putBlock(tx, block, height); err != nil {
				return err
			}
			hash = block.BlockHash()
		}
		return nil
	})
}

// Disconnect removes the tip block and returns it. Its non-coinbase
// transactions return to the pool.
func (s *Store) Disconnect() (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("disconnect", err, started)
	}()

	err = s.db.Update(func(tx *bolt.Tx) error {
		height, hash, err := tip(tx)
		if err != nil {
			return err
		}
		if height == 0 {
			return ErrGenesis
		}
		block, _, err = readBlock(tx, hash)
		if err != nil {
			return err
		}

		txs := tx.Bucket(txsBucket)
		pool := tx.Bucket(poolBucket)
		for position, msg := range block.Transactions {
			txHash := msg.TxHash()
			if err := txs.Delete(txHash[:]); err != nil {
				return err
			}
			if position == 0 {
				continue
			}
			raw, err := serializeTx(msg)
			if err != nil {
				return err
			}
			if err := pool.Put(txHash[:], raw); err != nil {
				return err
			}
		}
		if err := tx.Bucket(blocksBucket).Delete(hash[:]); err != nil {
			return err
		}
		if err := tx.Bucket(heightsBucket).Delete(uint64Key(height)); err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(tipKey, uint64Key(height-1))
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

// AddPool stores unconfirmed transactions. Transactions already confirmed
// or pooled are skipped. It returns how many were added.
func (s *Store) AddPool(msgs []*wire.MsgTx) (added int, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("add_pool", err, started)
	}()

	err = s.db.Update(func(tx *bolt.Tx) error {
		txs := tx.Bucket(txsBucket)
		pool := tx.Bucket(poolBucket)
		for _, msg := range msgs {
			hash := msg.TxHash()
			if txs.Get(hash[:]) != nil || pool.Get(hash[:]) != nil {
				continue
			}
			raw, err := serializeTx(msg)
			if err != nil {
				return err
			}
			if err := pool.Put(hash[:], raw); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	return added, err
}

func putBlock(tx *bolt.Tx, block *wire.MsgBlock, height uint64) error {
	hash := block.BlockHash()

	var buf bytes.Buffer
	buf.Write(uint64Key(height))
	if err := block.Serialize(&buf); err != nil {
		return fmt.Errorf("serialize block %s: %w", hash, err)
	}
	if err := tx.Bucket(blocksBucket).Put(hash[:], buf.Bytes()); err != nil {
		return err
	}
	if err := tx.Bucket(heightsBucket).Put(uint64Key(height), hash[:]); err != nil {
		return err
	}

	txs := tx.Bucket(txsBucket)
	pool := tx.Bucket(poolBucket)
	for position, msg := range block.Transactions {
		txHash := msg.TxHash()
		var rec bytes.Buffer
		rec.Write(uint64Key(height))
		rec.Write(uint64Key(uint64(position)))
		if err := msg.Serialize(&rec); err != nil {
			return fmt.Errorf("serialize tx %s: %w", txHash, err)
		}
		if err := txs.Put(txHash[:], rec.Bytes()); err != nil {
			return err
		}
		if err := pool.Delete(txHash[:]); err != nil {
			return err
		}
	}
	return tx.Bucket(metaBucket).Put(tipKey, uint64Key(height))
}

func serializeTx(msg *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	if err := msg.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize tx %s: %w", msg.TxHash(), err)
	}
	return buf.Bytes(), nil
}

// RemovePool drops pooled transactions.
func (s *Store) RemovePool(hashes []chainhash.Hash) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("remove_pool", err, started)
	}()

	return s.db.Update(func(tx *bolt.Tx) error {
		pool := tx.Bucket(poolBucket)
		for _, hash := range hashes {
			if err := pool.Delete(hash[:]); err != nil {
				return err
			}
		}
		return nil
	})
}
