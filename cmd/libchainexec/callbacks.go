package main

/*
#include "chainexec_types.h"

static inline void call_last_height_handler(last_height_fetch_handler_t h, int error, uint64_t height) {
	h(error, height);
}

static inline void call_block_height_handler(block_height_fetch_handler_t h, int error, uint64_t height) {
	h(error, height);
}

static inline void call_block_header_handler(block_header_fetch_handler_t h, int error, header_t header, uint64_t height) {
	h(error, header, height);
}

static inline void call_block_handler(block_fetch_handler_t h, int error, block_t block, uint64_t height) {
	h(error, block, height);
}

static inline void call_transaction_handler(transaction_fetch_handler_t h, int error, transaction_t tx, uint64_t height, uint64_t index) {
	h(error, tx, height, index);
}

static inline void call_output_handler(output_fetch_handler_t h, int error, output_t output) {
	h(error, output);
}
*/
import "C"

import (
	"github.com/goodnatureofminers/chainexec/internal/binding"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// Completions reach C through the trampolines above. Files with //export
// directives may only declare in their preamble, so they live here.

func lastHeightHandler(h C.last_height_fetch_handler_t) chain.HeightHandler {
	return func(code chain.Code, height uint64) {
		C.call_last_height_handler(h, C.int(code), C.uint64_t(height))
	}
}

func blockHeightHandler(h C.block_height_fetch_handler_t) chain.HeightHandler {
	return func(code chain.Code, height uint64) {
		C.call_block_height_handler(h, C.int(code), C.uint64_t(height))
	}
}

func blockHeaderHandler(h C.block_header_fetch_handler_t) binding.HeaderHandler {
	return func(code chain.Code, header handle.Handle, height uint64) {
		C.call_block_header_handler(h, C.int(code), C.header_t(header), C.uint64_t(height))
	}
}

func blockHandler(h C.block_fetch_handler_t) binding.BlockHandler {
	return func(code chain.Code, block handle.Handle, height uint64) {
		C.call_block_handler(h, C.int(code), C.block_t(block), C.uint64_t(height))
	}
}

func transactionHandler(h C.transaction_fetch_handler_t) binding.TransactionHandler {
	return func(code chain.Code, tx handle.Handle, height, position uint64) {
		C.call_transaction_handler(h, C.int(code), C.transaction_t(tx), C.uint64_t(height), C.uint64_t(position))
	}
}

func outputHandler(h C.output_fetch_handler_t) binding.OutputHandler {
	return func(code chain.Code, output handle.Handle) {
		C.call_output_handler(h, C.int(code), C.output_t(output))
	}
}
