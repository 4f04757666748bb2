package binding

import (
	"unsafe"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashAt reads a hash from the chainhash.HashSize bytes at p. A nil p reads
// as the zero hash, which no block or transaction has.
func HashAt(p unsafe.Pointer) chainhash.Hash {
	var h chainhash.Hash
	if p == nil {
		return h
	}
	copy(h[:], unsafe.Slice((*byte)(p), chainhash.HashSize))
	return h
}

// PutHash writes h to the chainhash.HashSize bytes at p. A nil p is
// ignored.
func PutHash(p unsafe.Pointer, h chainhash.Hash) {
	if p == nil {
		return
	}
	copy(unsafe.Slice((*byte)(p), chainhash.HashSize), h[:])
}
