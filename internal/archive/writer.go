// Package archive exports connected blocks to an analytical store.
package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/goodnatureofminers/chainexec/pkg/batcher"
	"go.uber.org/zap"
)

// Writer converts connected blocks and writes them to the repository in
// batches.
type Writer struct {
	converter *Converter
	batcher   *batcher.Batcher[model.InsertBlock]
	logger    *zap.Logger
}

// NewWriter builds a Writer. Start must be called before WriteBlock.
func NewWriter(
	repo Repository,
	outputs OutputSource,
	metrics Metrics,
	network model.Network,
	cfg batcher.Config,
	logger *zap.Logger,
) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}

	logger = logger.Named("archive").With(zap.String("network", string(network)))
	converter, err := NewConverter(outputs, network, logger)
	if err != nil {
		return nil, err
	}

	b := batcher.New(logger, repo.InsertArchiveBlocks, cfg).
		OnFlush(func(size int, err error) {
			metrics.ObserveFlush(err, size)
		})

	return &Writer{
		converter: converter,
		batcher:   b,
		logger:    logger,
	}, nil
}

func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes pending blocks.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// WriteBlock queues block at height for export.
func (w *Writer) WriteBlock(ctx context.Context, block *wire.MsgBlock, height uint64) error {
	row, err := w.converter.Convert(block, height)
	if err != nil {
		return fmt.Errorf("convert block %d: %w", height, err)
	}
	if err := w.batcher.Add(ctx, row); err != nil {
		return fmt.Errorf("queue block %d: %w", height, err)
	}
	return nil
}
