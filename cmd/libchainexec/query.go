package main

/*
#include "chainexec_types.h"
*/
import "C"

import (
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// Blocking calls return the status code and fill the out parameters on
// success. Fetch calls return at once and complete on a library thread.

//export fetch_last_height
func fetch_last_height(exec C.executor_t, handler C.last_height_fetch_handler_t) {
	registry.FetchLastHeight(handle.Handle(exec), lastHeightHandler(handler))
}

//export get_last_height
func get_last_height(exec C.executor_t, height *C.uint64_t) C.int {
	code, h := registry.GetLastHeight(handle.Handle(exec))
	*height = C.uint64_t(h)
	return C.int(code)
}

//export fetch_block_height
func fetch_block_height(exec C.executor_t, hash C.hash_t, handler C.block_height_fetch_handler_t) {
	registry.FetchBlockHeight(handle.Handle(exec), goHash(hash), blockHeightHandler(handler))
}

//export get_block_height
func get_block_height(exec C.executor_t, hash C.hash_t, height *C.uint64_t) C.int {
	code, h := registry.GetBlockHeight(handle.Handle(exec), goHash(hash))
	*height = C.uint64_t(h)
	return C.int(code)
}

//export fetch_block_header
func fetch_block_header(exec C.executor_t, height C.uint64_t, handler C.block_header_fetch_handler_t) {
	registry.FetchBlockHeader(handle.Handle(exec), uint64(height), blockHeaderHandler(handler))
}

//export get_block_header
func get_block_header(exec C.executor_t, height C.uint64_t, outHeader *C.header_t, outHeight *C.uint64_t) C.int {
	code, header, h := registry.GetBlockHeader(handle.Handle(exec), uint64(height))
	*outHeader, *outHeight = C.header_t(header), C.uint64_t(h)
	return C.int(code)
}

//export fetch_block_header_by_hash
func fetch_block_header_by_hash(exec C.executor_t, hash C.hash_t, handler C.block_header_fetch_handler_t) {
	registry.FetchBlockHeaderByHash(handle.Handle(exec), goHash(hash), blockHeaderHandler(handler))
}

//export get_block_header_by_hash
func get_block_header_by_hash(exec C.executor_t, hash C.hash_t, outHeader *C.header_t, outHeight *C.uint64_t) C.int {
	code, header, h := registry.GetBlockHeaderByHash(handle.Handle(exec), goHash(hash))
	*outHeader, *outHeight = C.header_t(header), C.uint64_t(h)
	return C.int(code)
}

//export fetch_block
func fetch_block(exec C.executor_t, height C.uint64_t, handler C.block_fetch_handler_t) {
	registry.FetchBlock(handle.Handle(exec), uint64(height), blockHandler(handler))
}

//export get_block
func get_block(exec C.executor_t, height C.uint64_t, outBlock *C.block_t, outHeight *C.uint64_t) C.int {
	code, block, h := registry.GetBlock(handle.Handle(exec), uint64(height))
	*outBlock, *outHeight = C.block_t(block), C.uint64_t(h)
	return C.int(code)
}

//export fetch_block_by_hash
func fetch_block_by_hash(exec C.executor_t, hash C.hash_t, handler C.block_fetch_handler_t) {
	registry.FetchBlockByHash(handle.Handle(exec), goHash(hash), blockHandler(handler))
}

//export get_block_by_hash
func get_block_by_hash(exec C.executor_t, hash C.hash_t, outBlock *C.block_t, outHeight *C.uint64_t) C.int {
	code, block, h := registry.GetBlockByHash(handle.Handle(exec), goHash(hash))
	*outBlock, *outHeight = C.block_t(block), C.uint64_t(h)
	return C.int(code)
}

//export fetch_transaction
func fetch_transaction(exec C.executor_t, hash C.hash_t, requireConfirmed C.int, handler C.transaction_fetch_handler_t) {
	registry.FetchTransaction(handle.Handle(exec), goHash(hash), requireConfirmed != 0, transactionHandler(handler))
}

//export get_transaction
func get_transaction(exec C.executor_t, hash C.hash_t, requireConfirmed C.int, outTransaction *C.transaction_t, outHeight, outIndex *C.uint64_t) C.int {
	code, tx, h, index := registry.GetTransaction(handle.Handle(exec), goHash(hash), requireConfirmed != 0)
	*outTransaction, *outHeight, *outIndex = C.transaction_t(tx), C.uint64_t(h), C.uint64_t(index)
	return C.int(code)
}

//export fetch_output
func fetch_output(exec C.executor_t, hash C.hash_t, index C.uint32_t, requireConfirmed C.int, handler C.output_fetch_handler_t) {
	point := wire.OutPoint{Hash: goHash(hash), Index: uint32(index)}
	registry.FetchOutput(handle.Handle(exec), point, requireConfirmed != 0, outputHandler(handler))
}

//export get_output
func get_output(exec C.executor_t, hash C.hash_t, index C.uint32_t, requireConfirmed C.int, outOutput *C.output_t) C.int {
	point := wire.OutPoint{Hash: goHash(hash), Index: uint32(index)}
	code, output := registry.GetOutput(handle.Handle(exec), point, requireConfirmed != 0)
	*outOutput = C.output_t(output)
	return C.int(code)
}
