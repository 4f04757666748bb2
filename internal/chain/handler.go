package chain

import "github.com/btcsuite/btcd/wire"

// Unconfirmed is reported as height and position of a transaction that is
// only known to the memory pool.
const Unconfirmed = ^uint64(0)

// Completion handlers. Each fires exactly once per request with the status
// code first; payload arguments are nil unless the code is Success.
type (
	HeightHandler      func(code Code, height uint64)
	HeaderHandler      func(code Code, header *wire.BlockHeader, height uint64)
	BlockHandler       func(code Code, block *wire.MsgBlock, height uint64)
	TransactionHandler func(code Code, tx *wire.MsgTx, height, position uint64)
	OutputHandler      func(code Code, output *wire.TxOut)
)
