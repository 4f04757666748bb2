package blockstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	bolt "go.etcd.io/bbolt"
)

// HashAt returns the hash of the block at height.
func (s *Store) HashAt(height uint64) (hash chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("hash_at", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		hash, err = hashAt(tx, height)
		return err
	})
	return hash, err
}

// HeightOf returns the height of the block with hash.
func (s *Store) HeightOf(hash chainhash.Hash) (height uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("height_of", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(blocksBucket).Get(hash[:])
		if raw == nil {
			return ErrNotFound
		}
		height = binary.BigEndian.Uint64(raw)
		return nil
	})
	return height, err
}

// Header returns the header of the block at height.
func (s *Store) Header(height uint64) (header *wire.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("header", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		hash, err := hashAt(tx, height)
		if err != nil {
			return err
		}
		header, _, err = readHeader(tx, hash)
		return err
	})
	return header, err
}

// HeaderByHash returns the header of the block with hash and its height.
func (s *Store) HeaderByHash(hash chainhash.Hash) (header *wire.BlockHeader, height uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("header_by_hash", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		header, height, err = readHeader(tx, hash)
		return err
	})
	return header, height, err
}

// Block returns the block at height.
func (s *Store) Block(height uint64) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("block", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		hash, err := hashAt(tx, height)
		if err != nil {
			return err
		}
		block, _, err = readBlock(tx, hash)
		return err
	})
	return block, err
}

// BlockByHash returns the block with hash and its height.
func (s *Store) BlockByHash(hash chainhash.Hash) (block *wire.MsgBlock, height uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("block_by_hash", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		block, height, err = readBlock(tx, hash)
		return err
	})
	return block, height, err
}

// Transaction returns the transaction with hash, its block height and its
// position in the block. Pool transactions are returned with height and
// position set to unconfirmed unless requireConfirmed is set.
func (s *Store) Transaction(hash chainhash.Hash, requireConfirmed bool) (msg *wire.MsgTx, height, position uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("transaction", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		msg, height, position, err = readTransaction(tx, hash, requireConfirmed)
		return err
	})
	return msg, height, position, err
}

// Output returns the output referenced by point.
func (s *Store) Output(point wire.OutPoint, requireConfirmed bool) (output *wire.TxOut, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("output", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		msg, _, _, err := readTransaction(tx, point.Hash, requireConfirmed)
		if err != nil {
			return err
		}
		if int(point.Index) >= len(msg.TxOut) {
			return fmt.Errorf("output %s: %w", point, ErrNotFound)
		}
		output = msg.TxOut[point.Index]
		return nil
	})
	return output, err
}

// HasTransaction reports whether hash is confirmed or pooled.
func (s *Store) HasTransaction(hash chainhash.Hash) (ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(txsBucket).Get(hash[:]) != nil || tx.Bucket(poolBucket).Get(hash[:]) != nil
		return nil
	})
	return ok, err
}

// PoolHashes lists the hashes of pooled transactions.
func (s *Store) PoolHashes() (hashes []chainhash.Hash, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(poolBucket).ForEach(func(k, _ []byte) error {
			var hash chainhash.Hash
			copy(hash[:], k)
			hashes = append(hashes, hash)
			return nil
		})
	})
	return hashes, err
}

func readHeader(tx *bolt.Tx, hash chainhash.Hash) (*wire.BlockHeader, uint64, error) {
	raw := tx.Bucket(blocksBucket).Get(hash[:])
	if raw == nil {
		return nil, 0, ErrNotFound
	}
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw[8:])); err != nil {
		return nil, 0, fmt.Errorf("decode header %s: %w", hash, err)
	}
	return &header, binary.BigEndian.Uint64(raw), nil
}

func readBlock(tx *bolt.Tx, hash chainhash.Hash) (*wire.MsgBlock, uint64, error) {
	raw := tx.Bucket(blocksBucket).Get(hash[:])
	if raw == nil {
		return nil, 0, ErrNotFound
	}
	var block wire.MsgBlock
	if err := block.Deserialize(bytes.NewReader(raw[8:])); err != nil {
		return nil, 0, fmt.Errorf("decode block %s: %w", hash, err)
	}
	return &block, binary.BigEndian.Uint64(raw), nil
}

func readTransaction(tx *bolt.Tx, hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error) {
	if raw := tx.Bucket(txsBucket).Get(hash[:]); raw != nil {
		var msg wire.MsgTx
		if err := msg.Deserialize(bytes.NewReader(raw[16:])); err != nil {
			return nil, 0, 0, fmt.Errorf("decode tx %s: %w", hash, err)
		}
		return &msg, binary.BigEndian.Uint64(raw), binary.BigEndian.Uint64(raw[8:]), nil
	}
	if requireConfirmed {
		return nil, 0, 0, ErrNotFound
	}
	raw := tx.Bucket(poolBucket).Get(hash[:])
	if raw == nil {
		return nil, 0, 0, ErrNotFound
	}
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, 0, 0, fmt.Errorf("decode pool tx %s: %w", hash, err)
	}
	return &msg, chain.Unconfirmed, chain.Unconfirmed, nil
}
