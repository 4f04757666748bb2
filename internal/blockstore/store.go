// Package blockstore persists a single block chain and a transaction pool in
// an embedded bbolt database.
package blockstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotInitialized     = errors.New("block store not initialized")
	ErrAlreadyInitialized = errors.New("block store already initialized")
	ErrOrphanBlock        = errors.New("block does not extend the tip")
	ErrGenesis            = errors.New("genesis block cannot be disconnected")
)

var (
	metaBucket    = []byte("meta")
	heightsBucket = []byte("heights")
	blocksBucket  = []byte("blocks")
	txsBucket     = []byte("txs")
	poolBucket    = []byte("pool")

	tipKey = []byte("tip")
)

type (
	// Metrics records store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Store is a bbolt backed chain store.
//
// Layout:
//
//	meta    tip                  -> height
//	heights height               -> block hash
//	blocks  block hash           -> height | block
//	txs     tx hash              -> height | position | tx
//	pool    tx hash              -> tx
//
// Heights and positions are big endian uint64.
type Store struct {
	db      *bolt.DB
	metrics Metrics
}

// Open opens or creates the store at path.
func Open(path string, metrics Metrics) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open block store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{metaBucket, heightsBucket, blocksBucket, txsBucket, poolBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, metrics: metrics}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialized reports whether a genesis block has been stored.
func (s *Store) Initialized() (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(metaBucket).Get(tipKey) != nil
		return nil
	})
	return ok, err
}

// Tip returns the height and hash of the last connected block.
func (s *Store) Tip() (height uint64, hash chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("tip", err, started)
	}()

	err = s.db.View(func(tx *bolt.Tx) error {
		var err error
		height, hash, err = tip(tx)
		return err
	})
	return height, hash, err
}

func tip(tx *bolt.Tx) (uint64, chainhash.Hash, error) {
	raw := tx.Bucket(metaBucket).Get(tipKey)
	if raw == nil {
		return 0, chainhash.Hash{}, ErrNotInitialized
	}
	height := binary.BigEndian.Uint64(raw)
	hash, err := hashAt(tx, height)
	return height, hash, err
}

func hashAt(tx *bolt.Tx, height uint64) (chainhash.Hash, error) {
	var hash chainhash.Hash
	raw := tx.Bucket(heightsBucket).Get(uint64Key(height))
	if raw == nil {
		return hash, ErrNotFound
	}
	copy(hash[:], raw)
	return hash, nil
}

func uint64Key(v uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, v)
	return key
}
