package chain

import "github.com/btcsuite/btcd/wire"

// InputIsValid reports whether the input carries any data, as opposed to
// a zero value.
func InputIsValid(in *wire.TxIn) bool {
	return in.Sequence != 0 || in.PreviousOutPoint != (wire.OutPoint{}) || len(in.SignatureScript) > 0
}

// InputIsFinal reports whether the input opts out of lock time.
func InputIsFinal(in *wire.TxIn) bool {
	return in.Sequence == wire.MaxTxInSequenceNum
}

// InputSerializedSize returns the wire size of the input.
func InputSerializedSize(in *wire.TxIn) uint64 {
	return uint64(in.SerializeSize())
}

// InputSigOps counts the signature operations of the input script and,
// when bip16 is active and prevout is known, of its embedded redeem script.
func InputSigOps(in *wire.TxIn, prevout Script, bip16 bool) int {
	script := Script(in.SignatureScript)
	count := script.SigOps(false)
	if bip16 && len(prevout) > 0 {
		count += script.EmbeddedSigOps(prevout)
	}
	return count
}

// IsCoinbase reports whether tx is a coinbase transaction.
func IsCoinbase(tx *wire.MsgTx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prev := tx.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == zeroHash
}
