package archive

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/model"
)

type (
	Repository interface {
		InsertArchiveBlocks(ctx context.Context, blocks []model.InsertBlock) error
	}

	// OutputSource resolves the previous outputs spent by archived inputs.
	OutputSource interface {
		Output(point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error)
	}

	Metrics interface {
		ObserveFlush(err error, blocks int)
	}
)
