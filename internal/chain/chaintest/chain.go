// Package chaintest builds small deterministic block chains for tests.
package chaintest

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Chain is a linked sequence of regtest blocks starting at genesis. Every
// block past genesis carries a coinbase; every block from height 2 also
// spends the coinbase of its parent.
type Chain struct {
	Params *chaincfg.Params
	Blocks []*wire.MsgBlock
}

// PayScript is the pay-to-pubkey-hash script used by generated outputs.
var PayScript = mustScript(txscript.NewScriptBuilder().
	AddOp(txscript.OP_DUP).
	AddOp(txscript.OP_HASH160).
	AddData(make([]byte, 20)).
	AddOp(txscript.OP_EQUALVERIFY).
	AddOp(txscript.OP_CHECKSIG))

// New builds a chain with heights 0 through tip.
func New(tip uint64) *Chain {
	params := &chaincfg.RegressionNetParams
	c := &Chain{Params: params, Blocks: []*wire.MsgBlock{params.GenesisBlock}}
	for height := uint64(1); height <= tip; height++ {
		c.Blocks = append(c.Blocks, c.next(height, 0))
	}
	return c
}

// Fork returns a copy of the chain truncated to height from, extended with
// a competing branch up to tip.
func (c *Chain) Fork(from, tip uint64) *Chain {
	fork := &Chain{Params: c.Params, Blocks: append([]*wire.MsgBlock(nil), c.Blocks[:from+1]...)}
	for height := from + 1; height <= tip; height++ {
		fork.Blocks = append(fork.Blocks, fork.next(height, 1))
	}
	return fork
}

// Tip returns the height of the last block.
func (c *Chain) Tip() uint64 {
	return uint64(len(c.Blocks) - 1)
}

// Block returns the block at height.
func (c *Chain) Block(height uint64) *wire.MsgBlock {
	return c.Blocks[height]
}

// Hash returns the hash of the block at height.
func (c *Chain) Hash(height uint64) chainhash.Hash {
	return c.Blocks[height].BlockHash()
}

// Coinbase returns the coinbase transaction of the block at height.
func (c *Chain) Coinbase(height uint64) *wire.MsgTx {
	return c.Blocks[height].Transactions[0]
}

// Unconfirmed returns a transaction spending the coinbase of the block at
// height that no block includes.
func (c *Chain) Unconfirmed(height uint64) *wire.MsgTx {
	return spend(c.Coinbase(height), 0xfffffffe)
}

func (c *Chain) next(height uint64, branch uint32) *wire.MsgBlock {
	parent := c.Blocks[height-1]
	coinbase := wire.NewMsgTx(wire.TxVersion)
	extra := make([]byte, 12)
	binary.LittleEndian.PutUint64(extra, height)
	binary.LittleEndian.PutUint32(extra[8:], branch)
	coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), extra, nil))
	coinbase.AddTxOut(wire.NewTxOut(50*btcutil.SatoshiPerBitcoin, PayScript))

	txs := []*wire.MsgTx{coinbase}
	if height >= 2 {
		txs = append(txs, spend(parent.Transactions[0], wire.MaxTxInSequenceNum))
	}

	utxs := make([]*btcutil.Tx, 0, len(txs))
	for _, tx := range txs {
		utxs = append(utxs, btcutil.NewTx(tx))
	}
	header := wire.NewBlockHeader(
		4,
		&chainhash.Hash{},
		&chainhash.Hash{},
		c.Params.PowLimitBits,
		uint32(height)+branch<<24,
	)
	header.PrevBlock = parent.BlockHash()
	header.MerkleRoot = blockchain.CalcMerkleRoot(utxs, false)
	header.Timestamp = parent.Header.Timestamp.Add(10 * time.Minute)

	block := wire.NewMsgBlock(header)
	for _, tx := range txs {
		_ = block.AddTransaction(tx)
	}
	return block
}

func spend(prev *wire.MsgTx, sequence uint32) *wire.MsgTx {
	hash := prev.TxHash()
	tx := wire.NewMsgTx(wire.TxVersion)
	in := wire.NewTxIn(wire.NewOutPoint(&hash, 0), []byte{txscript.OP_TRUE}, nil)
	in.Sequence = sequence
	tx.AddTxIn(in)
	half := prev.TxOut[0].Value / 2
	tx.AddTxOut(wire.NewTxOut(half, PayScript))
	tx.AddTxOut(wire.NewTxOut(prev.TxOut[0].Value-half-1000, PayScript))
	return tx
}

func mustScript(builder *txscript.ScriptBuilder) []byte {
	script, err := builder.Script()
	if err != nil {
		panic(err)
	}
	return script
}
