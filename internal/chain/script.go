package chain

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Script is a raw script as carried by inputs and outputs.
type Script []byte

// IsValid reports whether the script parses into a sequence of complete
// operations.
func (s Script) IsValid() bool {
	tokenizer := txscript.MakeScriptTokenizer(0, s)
	for tokenizer.Next() {
	}
	return tokenizer.Err() == nil
}

// IsValidOperations reports whether every operation is a defined opcode and
// no push exceeds the element size limit.
func (s Script) IsValidOperations() bool {
	tokenizer := txscript.MakeScriptTokenizer(0, s)
	for tokenizer.Next() {
		if tokenizer.Opcode() > txscript.OP_NOP10 {
			return false
		}
		if len(tokenizer.Data()) > txscript.MaxScriptElementSize {
			return false
		}
	}
	return tokenizer.Err() == nil
}

// ContentSize returns the script size without length prefix.
func (s Script) ContentSize() uint64 {
	return uint64(len(s))
}

// SerializedSize returns the script size, including the var-int length
// prefix when prefix is set.
func (s Script) SerializedSize(prefix bool) uint64 {
	size := uint64(len(s))
	if prefix {
		size += uint64(wire.VarIntSerializeSize(size))
	}
	return size
}

// String disassembles the script. Unparseable tails are rendered as
// "[error]".
func (s Script) String() string {
	disasm, _ := txscript.DisasmString(s)
	return disasm
}

// SigOps counts signature operations. With accurate set, multisig
// operations are counted by their preceding small-integer key count.
func (s Script) SigOps(accurate bool) int {
	if accurate {
		return txscript.GetPreciseSigOpCount(nil, s, false)
	}
	return txscript.GetSigOpCount(s)
}

// EmbeddedSigOps counts the signature operations of the redeem script that
// s pushes when spending the pay-to-script-hash script prevout.
func (s Script) EmbeddedSigOps(prevout Script) int {
	if !txscript.IsPayToScriptHash(prevout) {
		return 0
	}
	return txscript.GetPreciseSigOpCount(s, prevout, true)
}

// Class names the standard script class.
func (s Script) Class() string {
	return txscript.GetScriptClass(s).String()
}

// Addresses decodes the addresses paid by a public key script.
func (s Script) Addresses(params *chaincfg.Params) ([]string, error) {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(s, params)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
