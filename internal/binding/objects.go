package binding

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// Accessors return zero values for invalid handles. Accessors returning a
// handle register a copy that the caller releases separately.

func field[T, R any](r *Registry, table *handle.Table[T], h handle.Handle, fn func(T) R) R {
	v, ok := lookup(r, table, h)
	if !ok {
		var zero R
		return zero
	}
	return fn(v)
}

// HeaderDestruct releases a header handle.
func (r *Registry) HeaderDestruct(h handle.Handle) { release(r, r.headers, h) }

func (r *Registry) HeaderVersion(h handle.Handle) int32 {
	return field(r, r.headers, h, func(v *wire.BlockHeader) int32 { return v.Version })
}

func (r *Registry) HeaderPreviousBlockHash(h handle.Handle) chainhash.Hash {
	return field(r, r.headers, h, func(v *wire.BlockHeader) chainhash.Hash { return v.PrevBlock })
}

func (r *Registry) HeaderMerkle(h handle.Handle) chainhash.Hash {
	return field(r, r.headers, h, func(v *wire.BlockHeader) chainhash.Hash { return v.MerkleRoot })
}

func (r *Registry) HeaderHash(h handle.Handle) chainhash.Hash {
	return field(r, r.headers, h, func(v *wire.BlockHeader) chainhash.Hash { return v.BlockHash() })
}

// HeaderTimestamp returns the block time in Unix seconds.
func (r *Registry) HeaderTimestamp(h handle.Handle) uint32 {
	return field(r, r.headers, h, func(v *wire.BlockHeader) uint32 { return uint32(v.Timestamp.Unix()) })
}

func (r *Registry) HeaderBits(h handle.Handle) uint32 {
	return field(r, r.headers, h, func(v *wire.BlockHeader) uint32 { return v.Bits })
}

func (r *Registry) HeaderNonce(h handle.Handle) uint32 {
	return field(r, r.headers, h, func(v *wire.BlockHeader) uint32 { return v.Nonce })
}

// BlockDestruct releases a block handle.
func (r *Registry) BlockDestruct(h handle.Handle) { release(r, r.blocks, h) }

// BlockHeader registers a copy of the block header.
func (r *Registry) BlockHeader(h handle.Handle) handle.Handle {
	block, ok := lookup(r, r.blocks, h)
	if !ok {
		return 0
	}
	return r.headers.Put(chain.CopyHeader(&block.Header))
}

func (r *Registry) BlockHash(h handle.Handle) chainhash.Hash {
	return field(r, r.blocks, h, func(v *wire.MsgBlock) chainhash.Hash { return v.BlockHash() })
}

func (r *Registry) BlockTransactionCount(h handle.Handle) uint64 {
	return field(r, r.blocks, h, func(v *wire.MsgBlock) uint64 { return uint64(len(v.Transactions)) })
}

// BlockTransactionNth registers a copy of the n-th transaction of the
// block, or returns the null handle when n is out of range.
func (r *Registry) BlockTransactionNth(h handle.Handle, n uint64) handle.Handle {
	block, ok := lookup(r, r.blocks, h)
	if !ok || n >= uint64(len(block.Transactions)) {
		return 0
	}
	return r.transactions.Put(chain.CopyTransaction(block.Transactions[n]))
}

func (r *Registry) BlockSerializedSize(h handle.Handle) uint64 {
	return field(r, r.blocks, h, func(v *wire.MsgBlock) uint64 { return uint64(v.SerializeSize()) })
}

// TransactionDestruct releases a transaction handle.
func (r *Registry) TransactionDestruct(h handle.Handle) { release(r, r.transactions, h) }

func (r *Registry) TransactionHash(h handle.Handle) chainhash.Hash {
	return field(r, r.transactions, h, func(v *wire.MsgTx) chainhash.Hash { return v.TxHash() })
}

func (r *Registry) TransactionVersion(h handle.Handle) int32 {
	return field(r, r.transactions, h, func(v *wire.MsgTx) int32 { return v.Version })
}

func (r *Registry) TransactionLocktime(h handle.Handle) uint32 {
	return field(r, r.transactions, h, func(v *wire.MsgTx) uint32 { return v.LockTime })
}

func (r *Registry) TransactionSerializedSize(h handle.Handle) uint64 {
	return field(r, r.transactions, h, func(v *wire.MsgTx) uint64 { return uint64(v.SerializeSize()) })
}

func (r *Registry) TransactionIsCoinbase(h handle.Handle) bool {
	return field(r, r.transactions, h, chain.IsCoinbase)
}

func (r *Registry) TransactionInputsCount(h handle.Handle) uint64 {
	return field(r, r.transactions, h, func(v *wire.MsgTx) uint64 { return uint64(len(v.TxIn)) })
}

func (r *Registry) TransactionOutputsCount(h handle.Handle) uint64 {
	return field(r, r.transactions, h, func(v *wire.MsgTx) uint64 { return uint64(len(v.TxOut)) })
}

// TransactionInputNth registers a copy of the n-th input.
func (r *Registry) TransactionInputNth(h handle.Handle, n uint64) handle.Handle {
	tx, ok := lookup(r, r.transactions, h)
	if !ok || n >= uint64(len(tx.TxIn)) {
		return 0
	}
	in := *tx.TxIn[n]
	in.SignatureScript = append([]byte(nil), in.SignatureScript...)
	in.Witness = append(wire.TxWitness(nil), in.Witness...)
	return r.inputs.Put(&in)
}

// TransactionOutputNth registers a copy of the n-th output.
func (r *Registry) TransactionOutputNth(h handle.Handle, n uint64) handle.Handle {
	tx, ok := lookup(r, r.transactions, h)
	if !ok || n >= uint64(len(tx.TxOut)) {
		return 0
	}
	return r.outputs.Put(chain.CopyOutput(tx.TxOut[n]))
}

// OutputDestruct releases an output handle.
func (r *Registry) OutputDestruct(h handle.Handle) { release(r, r.outputs, h) }

func (r *Registry) OutputValue(h handle.Handle) int64 {
	return field(r, r.outputs, h, func(v *wire.TxOut) int64 { return v.Value })
}

// OutputScript registers a copy of the public key script.
func (r *Registry) OutputScript(h handle.Handle) handle.Handle {
	out, ok := lookup(r, r.outputs, h)
	if !ok {
		return 0
	}
	return r.scripts.Put(append(chain.Script(nil), out.PkScript...))
}

// InputDestruct releases an input handle.
func (r *Registry) InputDestruct(h handle.Handle) { release(r, r.inputs, h) }

func (r *Registry) InputIsValid(h handle.Handle) bool {
	return field(r, r.inputs, h, chain.InputIsValid)
}

func (r *Registry) InputIsFinal(h handle.Handle) bool {
	return field(r, r.inputs, h, chain.InputIsFinal)
}

func (r *Registry) InputSerializedSize(h handle.Handle) uint64 {
	return field(r, r.inputs, h, chain.InputSerializedSize)
}

func (r *Registry) InputSequence(h handle.Handle) uint32 {
	return field(r, r.inputs, h, func(v *wire.TxIn) uint32 { return v.Sequence })
}

// InputSignatureOperations counts the signature operations of the input
// spending an output locked by prevout. A null prevout counts the input
// script alone.
func (r *Registry) InputSignatureOperations(h, prevout handle.Handle, bip16 bool) uint64 {
	in, ok := lookup(r, r.inputs, h)
	if !ok {
		return 0
	}
	var script chain.Script
	if prevout != 0 {
		if script, ok = lookup(r, r.scripts, prevout); !ok {
			return 0
		}
	}
	return uint64(chain.InputSigOps(in, script, bip16))
}

// InputScript registers a copy of the signature script.
func (r *Registry) InputScript(h handle.Handle) handle.Handle {
	in, ok := lookup(r, r.inputs, h)
	if !ok {
		return 0
	}
	return r.scripts.Put(append(chain.Script(nil), in.SignatureScript...))
}

func (r *Registry) InputPreviousOutput(h handle.Handle) wire.OutPoint {
	return field(r, r.inputs, h, func(v *wire.TxIn) wire.OutPoint { return v.PreviousOutPoint })
}

// ScriptDestruct releases a script handle.
func (r *Registry) ScriptDestruct(h handle.Handle) { release(r, r.scripts, h) }

func (r *Registry) ScriptIsValid(h handle.Handle) bool {
	return field(r, r.scripts, h, chain.Script.IsValid)
}

func (r *Registry) ScriptIsValidOperations(h handle.Handle) bool {
	return field(r, r.scripts, h, chain.Script.IsValidOperations)
}

func (r *Registry) ScriptContentSize(h handle.Handle) uint64 {
	return field(r, r.scripts, h, chain.Script.ContentSize)
}

func (r *Registry) ScriptSerializedSize(h handle.Handle, prefix bool) uint64 {
	return field(r, r.scripts, h, func(s chain.Script) uint64 { return s.SerializedSize(prefix) })
}

// ScriptString disassembles the script; ok is false for invalid handles.
func (r *Registry) ScriptString(h handle.Handle) (string, bool) {
	s, ok := lookup(r, r.scripts, h)
	if !ok {
		return "", false
	}
	return s.String(), true
}

func (r *Registry) ScriptSigOps(h handle.Handle, accurate bool) uint64 {
	return field(r, r.scripts, h, func(s chain.Script) uint64 { return uint64(s.SigOps(accurate)) })
}

// ScriptEmbeddedSigOps counts the signature operations of the script
// redeemed by h when spending prevout.
func (r *Registry) ScriptEmbeddedSigOps(h, prevout handle.Handle) uint64 {
	s, ok := lookup(r, r.scripts, h)
	if !ok {
		return 0
	}
	p, ok := lookup(r, r.scripts, prevout)
	if !ok {
		return 0
	}
	return uint64(s.EmbeddedSigOps(p))
}
