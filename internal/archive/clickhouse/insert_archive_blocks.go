package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/chainexec/internal/model"
)

// InsertArchiveBlocks writes a group of converted blocks table by table.
// Blocks go last so a block row implies its transactions are present.
func (r *Repository) InsertArchiveBlocks(ctx context.Context, items []model.InsertBlock) error {
	var (
		blocks  = make([]model.Block, 0, len(items))
		txs     []model.Transaction
		outputs []model.TransactionOutput
		inputs  []model.TransactionInput
	)
	for _, item := range items {
		blocks = append(blocks, item.Block)
		txs = append(txs, item.Txs...)
		outputs = append(outputs, item.Outputs...)
		inputs = append(inputs, item.Inputs...)
	}

	if err := r.InsertTransactions(ctx, txs); err != nil {
		return err
	}
	if err := r.InsertTransactionOutputs(ctx, outputs); err != nil {
		return err
	}
	if err := r.InsertTransactionInputs(ctx, inputs); err != nil {
		return err
	}
	return r.InsertBlocks(ctx, blocks)
}
