package archive

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/goodnatureofminers/chainexec/pkg/safe"
	"go.uber.org/zap"
)

// Converter turns wire blocks into archive rows.
type Converter struct {
	outputs OutputSource
	network model.Network
	params  *chaincfg.Params
	logger  *zap.Logger
}

// NewConverter builds a Converter for network. Input values are resolved
// through outputs.
func NewConverter(outputs OutputSource, network model.Network, logger *zap.Logger) (*Converter, error) {
	params, err := chain.ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Converter{outputs: outputs, network: network, params: params, logger: logger}, nil
}

// Convert maps block at height to its archive rows.
func (c *Converter) Convert(block *wire.MsgBlock, height uint64) (model.InsertBlock, error) {
	blockTime := block.Header.Timestamp.UTC()

	size, err := safe.Uint32(block.SerializeSize())
	if err != nil {
		return model.InsertBlock{}, fmt.Errorf("block %d size overflow: %w", height, err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return model.InsertBlock{}, fmt.Errorf("block %d tx count overflow: %w", height, err)
	}

	out := model.InsertBlock{
		Block: model.Block{
			Coin:       model.BTC,
			Network:    c.network,
			Height:     height,
			Hash:       block.BlockHash().String(),
			PrevHash:   block.Header.PrevBlock.String(),
			Timestamp:  blockTime,
			Version:    block.Header.Version,
			MerkleRoot: block.Header.MerkleRoot.String(),
			Bits:       block.Header.Bits,
			Nonce:      block.Header.Nonce,
			Size:       size,
			TXCount:    txCount,
		},
		Txs: make([]model.Transaction, 0, len(block.Transactions)),
	}

	// Outputs created earlier in the block can be spent later in it.
	created := make(map[wire.OutPoint]*wire.TxOut)
	for pos, msg := range block.Transactions {
		txid := msg.TxHash()

		tx, err := c.convertTransaction(msg, height, pos, blockTime)
		if err != nil {
			return model.InsertBlock{}, err
		}
		out.Txs = append(out.Txs, tx)

		inputs, err := c.convertInputs(msg, height, blockTime, created)
		if err != nil {
			return model.InsertBlock{}, err
		}
		out.Inputs = append(out.Inputs, inputs...)

		outputs, err := c.convertOutputs(msg, height, blockTime)
		if err != nil {
			return model.InsertBlock{}, err
		}
		out.Outputs = append(out.Outputs, outputs...)

		for idx, txOut := range msg.TxOut {
			created[wire.OutPoint{Hash: txid, Index: uint32(idx)}] = txOut
		}
	}
	return out, nil
}

func (c *Converter) convertTransaction(msg *wire.MsgTx, height uint64, pos int, blockTime time.Time) (model.Transaction, error) {
	txid := msg.TxHash().String()

	position, err := safe.Uint32(pos)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s position overflow: %w", txid, err)
	}
	size, err := safe.Uint32(msg.SerializeSize())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s size overflow: %w", txid, err)
	}
	weight := blockchain.GetTransactionWeight(btcutil.NewTx(msg))
	vsize, err := safe.Uint32((weight + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s vsize overflow: %w", txid, err)
	}

	return model.Transaction{
		Coin:        model.BTC,
		Network:     c.network,
		TxID:        txid,
		BlockHeight: height,
		Position:    position,
		Timestamp:   blockTime,
		Size:        size,
		VSize:       vsize,
		Version:     msg.Version,
		LockTime:    msg.LockTime,
		InputCount:  uint32(len(msg.TxIn)),
		OutputCount: uint32(len(msg.TxOut)),
		IsCoinbase:  chain.IsCoinbase(msg),
	}, nil
}

func (c *Converter) convertOutputs(msg *wire.MsgTx, height uint64, blockTime time.Time) ([]model.TransactionOutput, error) {
	txid := msg.TxHash().String()
	outputs := make([]model.TransactionOutput, 0, len(msg.TxOut))
	for idx, txOut := range msg.TxOut {
		value, err := safe.Uint64(txOut.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", txid, idx, err)
		}
		script := chain.Script(txOut.PkScript)
		outputs = append(outputs, model.TransactionOutput{
			Coin:        model.BTC,
			Network:     c.network,
			BlockHeight: height,
			BlockTime:   blockTime,
			TxID:        txid,
			Index:       uint32(idx),
			Value:       value,
			ScriptType:  script.Class(),
			ScriptHex:   hex.EncodeToString(script),
			ScriptAsm:   script.String(),
			Addresses:   c.addresses(script),
		})
	}
	return outputs, nil
}

func (c *Converter) convertInputs(
	msg *wire.MsgTx,
	height uint64,
	blockTime time.Time,
	created map[wire.OutPoint]*wire.TxOut,
) ([]model.TransactionInput, error) {
	txid := msg.TxHash().String()
	coinbase := chain.IsCoinbase(msg)
	inputs := make([]model.TransactionInput, 0, len(msg.TxIn))
	for idx, txIn := range msg.TxIn {
		sig := chain.Script(txIn.SignatureScript)
		input := model.TransactionInput{
			Coin:         model.BTC,
			Network:      c.network,
			BlockHeight:  height,
			BlockTime:    blockTime,
			TxID:         txid,
			Index:        uint32(idx),
			PrevTxID:     txIn.PreviousOutPoint.Hash.String(),
			PrevVout:     txIn.PreviousOutPoint.Index,
			Sequence:     txIn.Sequence,
			IsCoinbase:   coinbase,
			ScriptSigHex: hex.EncodeToString(sig),
			ScriptSigAsm: sig.String(),
			Witness:      make([]string, 0, len(txIn.Witness)),
			Addresses:    []string{},
		}
		for _, item := range txIn.Witness {
			input.Witness = append(input.Witness, hex.EncodeToString(item))
		}

		if !coinbase {
			if prev := c.previousOutput(txIn.PreviousOutPoint, created); prev != nil {
				value, err := safe.Uint64(prev.Value)
				if err != nil {
					return nil, fmt.Errorf("tx %s input %d value: %w", txid, idx, err)
				}
				input.Value = value
				input.Addresses = c.addresses(prev.PkScript)
			}
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// previousOutput returns nil when the spent output is unknown; the input is
// then archived without value and addresses.
func (c *Converter) previousOutput(point wire.OutPoint, created map[wire.OutPoint]*wire.TxOut) *wire.TxOut {
	if out, ok := created[point]; ok {
		return out
	}
	if c.outputs == nil {
		return nil
	}
	out, err := c.outputs.Output(point, true)
	if err != nil {
		c.logger.Debug("previous output not resolved", zap.Stringer("outpoint", point), zap.Error(err))
		return nil
	}
	return out
}

func (c *Converter) addresses(script chain.Script) []string {
	addrs, err := script.Addresses(c.params)
	if err != nil || addrs == nil {
		return []string{}
	}
	return addrs
}
