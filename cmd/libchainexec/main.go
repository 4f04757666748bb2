// Command libchainexec builds the C library of the chain query node:
//
//	go build -buildmode=c-shared -o libchainexec.so ./cmd/libchainexec
//
// The generated libchainexec.h declares every function; chainexec_types.h
// declares the handle and callback types it uses.
package main

/*
#include <stdlib.h>
#include "chainexec_types.h"
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainexec/internal/binding"
	"github.com/goodnatureofminers/chainexec/internal/executor"
)

// registry logs handle misuse to the process stderr.
var registry = binding.NewRegistry(executor.NewLogger(nil, os.Stderr))

func main() {}

func goHash(hash C.hash_t) chainhash.Hash {
	return binding.HashAt(unsafe.Pointer(hash))
}

func putHash(out *C.uint8_t, h chainhash.Hash) {
	binding.PutHash(unsafe.Pointer(out), h)
}

func cBool(v bool) C.int {
	if v {
		return 1
	}
	return 0
}

//export chainexec_free_string
func chainexec_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}
