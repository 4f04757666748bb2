package model

import "time"

// Block is a connected block as exported to the archive.
type Block struct {
	Coin       Coin
	Network    Network
	Height     uint64
	Hash       string
	PrevHash   string
	Timestamp  time.Time
	Version    int32
	MerkleRoot string
	Bits       uint32
	Nonce      uint32
	Size       uint32
	TXCount    uint32
}

// Transaction is a confirmed transaction as exported to the archive.
type Transaction struct {
	Coin        Coin
	Network     Network
	TxID        string
	BlockHeight uint64
	Position    uint32
	Timestamp   time.Time
	Size        uint32
	VSize       uint32
	Version     int32
	LockTime    uint32
	InputCount  uint32
	OutputCount uint32
	IsCoinbase  bool
}

// TransactionInput describes a reference to a previous transaction output.
type TransactionInput struct {
	Coin         Coin
	Network      Network
	BlockHeight  uint64
	BlockTime    time.Time
	TxID         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	Sequence     uint32
	IsCoinbase   bool
	Value        uint64
	ScriptSigHex string
	ScriptSigAsm string
	Witness      []string
	Addresses    []string
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Coin        Coin
	Network     Network
	BlockHeight uint64
	BlockTime   time.Time
	TxID        string
	Index       uint32
	Value       uint64
	ScriptType  string
	ScriptHex   string
	ScriptAsm   string
	Addresses   []string
}

// InsertBlock groups a block with its transactions and related inputs/outputs for batch insertion.
type InsertBlock struct {
	Block   Block
	Txs     []Transaction
	Outputs []TransactionOutput
	Inputs  []TransactionInput
}
