package chain

import "github.com/btcsuite/btcd/wire"

// CopyHeader returns an independent copy of header, or nil.
func CopyHeader(header *wire.BlockHeader) *wire.BlockHeader {
	if header == nil {
		return nil
	}
	h := *header
	return &h
}

// CopyBlock returns a deep copy of block, or nil.
func CopyBlock(block *wire.MsgBlock) *wire.MsgBlock {
	if block == nil {
		return nil
	}
	out := &wire.MsgBlock{
		Header:       block.Header,
		Transactions: make([]*wire.MsgTx, 0, len(block.Transactions)),
	}
	for _, tx := range block.Transactions {
		out.Transactions = append(out.Transactions, tx.Copy())
	}
	return out
}

// CopyTransaction returns a deep copy of tx, or nil.
func CopyTransaction(tx *wire.MsgTx) *wire.MsgTx {
	if tx == nil {
		return nil
	}
	return tx.Copy()
}

// CopyOutput returns a deep copy of output, or nil.
func CopyOutput(output *wire.TxOut) *wire.TxOut {
	if output == nil {
		return nil
	}
	script := make([]byte, len(output.PkScript))
	copy(script, output.PkScript)
	return wire.NewTxOut(output.Value, script)
}
