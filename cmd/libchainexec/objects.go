package main

/*
#include "chainexec_types.h"
*/
import "C"

import (
	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// Header

//export header_destruct
func header_destruct(header C.header_t) {
	registry.HeaderDestruct(handle.Handle(header))
}

//export header_version
func header_version(header C.header_t) C.int32_t {
	return C.int32_t(registry.HeaderVersion(handle.Handle(header)))
}

//export header_previous_block_hash
func header_previous_block_hash(header C.header_t, out *C.uint8_t) {
	putHash(out, registry.HeaderPreviousBlockHash(handle.Handle(header)))
}

//export header_merkle
func header_merkle(header C.header_t, out *C.uint8_t) {
	putHash(out, registry.HeaderMerkle(handle.Handle(header)))
}

//export header_hash
func header_hash(header C.header_t, out *C.uint8_t) {
	putHash(out, registry.HeaderHash(handle.Handle(header)))
}

//export header_timestamp
func header_timestamp(header C.header_t) C.uint32_t {
	return C.uint32_t(registry.HeaderTimestamp(handle.Handle(header)))
}

//export header_bits
func header_bits(header C.header_t) C.uint32_t {
	return C.uint32_t(registry.HeaderBits(handle.Handle(header)))
}

//export header_nonce
func header_nonce(header C.header_t) C.uint32_t {
	return C.uint32_t(registry.HeaderNonce(handle.Handle(header)))
}

// Block

//export block_destruct
func block_destruct(block C.block_t) {
	registry.BlockDestruct(handle.Handle(block))
}

//export block_header
func block_header(block C.block_t) C.header_t {
	return C.header_t(registry.BlockHeader(handle.Handle(block)))
}

//export block_hash
func block_hash(block C.block_t, out *C.uint8_t) {
	putHash(out, registry.BlockHash(handle.Handle(block)))
}

//export block_transaction_count
func block_transaction_count(block C.block_t) C.uint64_t {
	return C.uint64_t(registry.BlockTransactionCount(handle.Handle(block)))
}

//export block_transaction_nth
func block_transaction_nth(block C.block_t, n C.uint64_t) C.transaction_t {
	return C.transaction_t(registry.BlockTransactionNth(handle.Handle(block), uint64(n)))
}

//export block_serialized_size
func block_serialized_size(block C.block_t) C.uint64_t {
	return C.uint64_t(registry.BlockSerializedSize(handle.Handle(block)))
}

// Transaction

//export transaction_destruct
func transaction_destruct(tx C.transaction_t) {
	registry.TransactionDestruct(handle.Handle(tx))
}

//export transaction_hash
func transaction_hash(tx C.transaction_t, out *C.uint8_t) {
	putHash(out, registry.TransactionHash(handle.Handle(tx)))
}

//export transaction_version
func transaction_version(tx C.transaction_t) C.int32_t {
	return C.int32_t(registry.TransactionVersion(handle.Handle(tx)))
}

//export transaction_locktime
func transaction_locktime(tx C.transaction_t) C.uint32_t {
	return C.uint32_t(registry.TransactionLocktime(handle.Handle(tx)))
}

//export transaction_serialized_size
func transaction_serialized_size(tx C.transaction_t) C.uint64_t {
	return C.uint64_t(registry.TransactionSerializedSize(handle.Handle(tx)))
}

//export transaction_is_coinbase
func transaction_is_coinbase(tx C.transaction_t) C.int {
	return cBool(registry.TransactionIsCoinbase(handle.Handle(tx)))
}

//export transaction_inputs_count
func transaction_inputs_count(tx C.transaction_t) C.uint64_t {
	return C.uint64_t(registry.TransactionInputsCount(handle.Handle(tx)))
}

//export transaction_input_nth
func transaction_input_nth(tx C.transaction_t, n C.uint64_t) C.input_t {
	return C.input_t(registry.TransactionInputNth(handle.Handle(tx), uint64(n)))
}

//export transaction_outputs_count
func transaction_outputs_count(tx C.transaction_t) C.uint64_t {
	return C.uint64_t(registry.TransactionOutputsCount(handle.Handle(tx)))
}

//export transaction_output_nth
func transaction_output_nth(tx C.transaction_t, n C.uint64_t) C.output_t {
	return C.output_t(registry.TransactionOutputNth(handle.Handle(tx), uint64(n)))
}

// Output

//export output_destruct
func output_destruct(output C.output_t) {
	registry.OutputDestruct(handle.Handle(output))
}

//export output_value
func output_value(output C.output_t) C.int64_t {
	return C.int64_t(registry.OutputValue(handle.Handle(output)))
}

//export output_script
func output_script(output C.output_t) C.script_t {
	return C.script_t(registry.OutputScript(handle.Handle(output)))
}

// Input

//export input_destruct
func input_destruct(input C.input_t) {
	registry.InputDestruct(handle.Handle(input))
}

//export input_is_valid
func input_is_valid(input C.input_t) C.int {
	return cBool(registry.InputIsValid(handle.Handle(input)))
}

//export input_is_final
func input_is_final(input C.input_t) C.int {
	return cBool(registry.InputIsFinal(handle.Handle(input)))
}

//export input_serialized_size
func input_serialized_size(input C.input_t) C.uint64_t {
	return C.uint64_t(registry.InputSerializedSize(handle.Handle(input)))
}

//export input_sequence
func input_sequence(input C.input_t) C.uint32_t {
	return C.uint32_t(registry.InputSequence(handle.Handle(input)))
}

//export input_signature_operations
func input_signature_operations(input C.input_t, prevout C.script_t, bip16Active C.int) C.uint64_t {
	return C.uint64_t(registry.InputSignatureOperations(handle.Handle(input), handle.Handle(prevout), bip16Active != 0))
}

//export input_script
func input_script(input C.input_t) C.script_t {
	return C.script_t(registry.InputScript(handle.Handle(input)))
}

//export input_previous_output_hash
func input_previous_output_hash(input C.input_t, out *C.uint8_t) {
	putHash(out, registry.InputPreviousOutput(handle.Handle(input)).Hash)
}

//export input_previous_output_index
func input_previous_output_index(input C.input_t) C.uint32_t {
	return C.uint32_t(registry.InputPreviousOutput(handle.Handle(input)).Index)
}

// Script

//export script_destruct
func script_destruct(script C.script_t) {
	registry.ScriptDestruct(handle.Handle(script))
}

//export script_is_valid
func script_is_valid(script C.script_t) C.int {
	return cBool(registry.ScriptIsValid(handle.Handle(script)))
}

//export script_is_valid_operations
func script_is_valid_operations(script C.script_t) C.int {
	return cBool(registry.ScriptIsValidOperations(handle.Handle(script)))
}

//export script_satoshi_content_size
func script_satoshi_content_size(script C.script_t) C.uint64_t {
	return C.uint64_t(registry.ScriptContentSize(handle.Handle(script)))
}

//export script_serialized_size
func script_serialized_size(script C.script_t, prefix C.int) C.uint64_t {
	return C.uint64_t(registry.ScriptSerializedSize(handle.Handle(script), prefix != 0))
}

// script_to_string returns a string released with chainexec_free_string,
// or NULL for an invalid handle.
//
//export script_to_string
func script_to_string(script C.script_t) *C.char {
	s, ok := registry.ScriptString(handle.Handle(script))
	if !ok {
		return nil
	}
	return C.CString(s)
}

//export script_sigops
func script_sigops(script C.script_t, accurate C.int) C.uint64_t {
	return C.uint64_t(registry.ScriptSigOps(handle.Handle(script), accurate != 0))
}

//export script_embedded_sigops
func script_embedded_sigops(script, prevout C.script_t) C.uint64_t {
	return C.uint64_t(registry.ScriptEmbeddedSigOps(handle.Handle(script), handle.Handle(prevout)))
}
