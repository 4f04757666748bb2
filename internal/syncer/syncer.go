// Package syncer follows an upstream node and connects its blocks, and
// optionally mirrors its memory pool, into the local block store.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/blockstore"
	"github.com/goodnatureofminers/chainexec/internal/clock"
	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/goodnatureofminers/chainexec/pkg/safe"
	"github.com/goodnatureofminers/chainexec/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes the follower.
type Config struct {
	Workers int
	Window  int
	Mempool bool
}

// Service keeps the local store in step with the upstream node.
type Service struct {
	logger        *zap.Logger
	upstream      Upstream
	store         Store
	writer        BlockWriter
	metrics       Metrics
	cfg           Config
	wait          func(context.Context, time.Duration, <-chan struct{}) (bool, error)
	sleepDuration time.Duration
	idleDuration  time.Duration
	blockSignal   <-chan struct{}
}

// New builds a Service. writer may be nil.
func New(
	upstream Upstream,
	store Store,
	writer BlockWriter,
	metrics Metrics,
	cfg Config,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.Window < 1 {
		cfg.Window = defaultWindow
	}
	return &Service{
		logger:        logger.Named("syncer").With(zap.String("network", string(network))),
		upstream:      upstream,
		store:         store,
		writer:        writer,
		metrics:       metrics,
		cfg:           cfg,
		wait:          clock.Wait,
		sleepDuration: sleepDuration,
		idleDuration:  idleSleepDuration,
		blockSignal:   blockSignal,
	}, nil
}

// Run follows the upstream node until ctx ends.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		synced, err := s.step(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("sync step failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if _, err := s.wait(ctx, s.sleepDuration, nil); err != nil {
				return err
			}
		case synced:
			if s.cfg.Mempool {
				s.refreshMempool()
			}
			if _, err := s.wait(ctx, s.idleDuration, s.blockSignal); err != nil {
				return err
			}
		}
	}
}

// step makes one unit of progress: a single disconnect on divergence or a
// window of connected blocks. It reports whether the store already matches
// the upstream tip.
func (s *Service) step(ctx context.Context) (bool, error) {
	localHeight, localHash, err := s.store.Tip()
	if err != nil {
		return false, fmt.Errorf("read local tip: %w", err)
	}
	s.metrics.ObserveTip(localHeight)

	count, err := s.upstream.GetBlockCount()
	if err != nil {
		return false, fmt.Errorf("get block count: %w", err)
	}
	upstreamHeight, err := safe.Uint64(count)
	if err != nil {
		return false, err
	}

	diverged, err := s.diverged(localHeight, localHash, upstreamHeight)
	if err != nil {
		return false, err
	}
	if diverged {
		return false, s.disconnect()
	}
	if localHeight >= upstreamHeight {
		return true, nil
	}

	to := min(localHeight+uint64(s.cfg.Window), upstreamHeight)
	return false, s.connect(ctx, localHeight+1, to)
}

func (s *Service) diverged(localHeight uint64, localHash chainhash.Hash, upstreamHeight uint64) (bool, error) {
	height := min(localHeight, upstreamHeight)
	ours := localHash
	if height != localHeight {
		var err error
		if ours, err = s.store.HashAt(height); err != nil {
			return false, fmt.Errorf("read local hash at height %d: %w", height, err)
		}
	}
	theirs, err := s.upstreamHash(height)
	if err != nil {
		return false, err
	}
	return *theirs != ours, nil
}

func (s *Service) disconnect() error {
	block, err := s.store.Disconnect()
	if err != nil {
		return fmt.Errorf("disconnect tip: %w", err)
	}
	s.metrics.ObserveDisconnect(1)
	s.logger.Info("disconnected block", zap.Stringer("hash", block.BlockHash()))
	return nil
}

func (s *Service) connect(ctx context.Context, from, to uint64) (err error) {
	started := time.Now()
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	connected := 0
	defer func() {
		s.metrics.ObserveConnect(err, connected, started)
	}()

	blocks, err := workerpool.Map(ctx, s.cfg.Workers, heights, func(_ context.Context, height uint64) (*wire.MsgBlock, error) {
		hash, err := s.upstreamHash(height)
		if err != nil {
			return nil, err
		}
		block, err := s.upstream.GetBlock(hash)
		if err != nil {
			return nil, fmt.Errorf("get block %s: %w", hash, err)
		}
		return block, nil
	})
	if err != nil {
		return err
	}

	if err := s.store.Connect(blocks); err != nil {
		if errors.Is(err, blockstore.ErrOrphanBlock) {
			s.logger.Info("upstream changed while fetching, retrying", zap.Uint64("from", from), zap.Uint64("to", to))
			return nil
		}
		return fmt.Errorf("connect heights %d-%d: %w", from, to, err)
	}
	connected = len(blocks)
	s.metrics.ObserveTip(to)
	s.logger.Debug("connected blocks", zap.Uint64("from", from), zap.Uint64("to", to))

	if s.writer == nil {
		return nil
	}
	for i, block := range blocks {
		if err := s.writer.WriteBlock(ctx, block, heights[i]); err != nil {
			s.logger.Error("archive block failed", zap.Uint64("height", heights[i]), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) upstreamHash(height uint64) (*chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, err
	}
	hash, err := s.upstream.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}
