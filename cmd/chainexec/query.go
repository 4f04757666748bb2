package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/transport"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"
)

var queryOptions struct {
	Addr    string        `long:"addr" env:"CHAINEXEC_GRPC_ADDR" default:"127.0.0.1:9090" description:"gRPC address of the node"`
	Timeout time.Duration `long:"timeout" default:"10s" description:"query timeout"`
}

var stdout io.Writer = os.Stdout

// withClient runs fn against the node and prints what it returns.
func withClient(fn func(ctx context.Context, client *transport.Client) (any, error)) error {
	client, err := transport.Dial(queryOptions.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), queryOptions.Timeout)
	defer cancel()

	out, err := fn(ctx, client)
	if err != nil {
		return fmt.Errorf("query failed with code %d: %w", chain.CodeOf(err), err)
	}
	return printYAML(stdout, out)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// locator is a block key given as a height or a hex hash.
type locator struct {
	Key string `positional-arg-name:"height|hash" required:"yes"`
}

func (l locator) parse() (height uint64, hash *chainhash.Hash, err error) {
	if len(l.Key) == chainhash.MaxHashStringSize {
		hash, err = chainhash.NewHashFromStr(l.Key)
		return 0, hash, err
	}
	height, err = strconv.ParseUint(l.Key, 10, 64)
	return height, nil, err
}

type lastHeightCommand struct{}

func (c *lastHeightCommand) Execute([]string) error {
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		height, err := client.GetLastHeight(ctx)
		return heightView{Height: height}, err
	})
}

type blockHeightCommand struct {
	Args struct {
		Hash string `positional-arg-name:"hash" required:"yes"`
	} `positional-args:"yes"`
}

func (c *blockHeightCommand) Execute([]string) error {
	hash, err := chainhash.NewHashFromStr(c.Args.Hash)
	if err != nil {
		return err
	}
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		height, err := client.GetBlockHeight(ctx, *hash)
		return heightView{Height: height}, err
	})
}

type headerCommand struct {
	Args locator `positional-args:"yes"`
}

func (c *headerCommand) Execute([]string) error {
	height, hash, err := c.Args.parse()
	if err != nil {
		return err
	}
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		var header *wire.BlockHeader
		if hash != nil {
			header, height, err = client.GetBlockHeaderByHash(ctx, *hash)
		} else {
			header, height, err = client.GetBlockHeader(ctx, height)
		}
		if err != nil {
			return nil, err
		}
		return newHeaderView(header, height), nil
	})
}

type blockCommand struct {
	Args locator `positional-args:"yes"`
}

func (c *blockCommand) Execute([]string) error {
	height, hash, err := c.Args.parse()
	if err != nil {
		return err
	}
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		var block *wire.MsgBlock
		if hash != nil {
			block, height, err = client.GetBlockByHash(ctx, *hash)
		} else {
			block, height, err = client.GetBlock(ctx, height)
		}
		if err != nil {
			return nil, err
		}
		return newBlockView(block, height), nil
	})
}

type transactionCommand struct {
	Unconfirmed bool `long:"unconfirmed" description:"also look in the memory pool"`
	Args        struct {
		Hash string `positional-arg-name:"hash" required:"yes"`
	} `positional-args:"yes"`
}

func (c *transactionCommand) Execute([]string) error {
	hash, err := chainhash.NewHashFromStr(c.Args.Hash)
	if err != nil {
		return err
	}
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		tx, height, position, err := client.GetTransaction(ctx, *hash, !c.Unconfirmed)
		if err != nil {
			return nil, err
		}
		return newTransactionView(tx, height, position), nil
	})
}

type outputCommand struct {
	Unconfirmed bool `long:"unconfirmed" description:"also look in the memory pool"`
	Args        struct {
		Hash  string `positional-arg-name:"hash" required:"yes"`
		Index uint32 `positional-arg-name:"index" required:"yes"`
	} `positional-args:"yes"`
}

func (c *outputCommand) Execute([]string) error {
	hash, err := chainhash.NewHashFromStr(c.Args.Hash)
	if err != nil {
		return err
	}
	point := wire.OutPoint{Hash: *hash, Index: c.Args.Index}
	return withClient(func(ctx context.Context, client *transport.Client) (any, error) {
		out, err := client.GetOutput(ctx, point, !c.Unconfirmed)
		if err != nil {
			return nil, err
		}
		return newOutputView(out), nil
	})
}

type heightView struct {
	Height uint64 `yaml:"height"`
}

type headerView struct {
	Hash       string    `yaml:"hash"`
	Height     uint64    `yaml:"height"`
	Version    int32     `yaml:"version"`
	PrevBlock  string    `yaml:"previous_block_hash"`
	MerkleRoot string    `yaml:"merkle_root"`
	Timestamp  time.Time `yaml:"timestamp"`
	Bits       string    `yaml:"bits"`
	Nonce      uint32    `yaml:"nonce"`
}

func newHeaderView(h *wire.BlockHeader, height uint64) headerView {
	return headerView{
		Hash:       h.BlockHash().String(),
		Height:     height,
		Version:    h.Version,
		PrevBlock:  h.PrevBlock.String(),
		MerkleRoot: h.MerkleRoot.String(),
		Timestamp:  h.Timestamp.UTC(),
		Bits:       strconv.FormatUint(uint64(h.Bits), 16),
		Nonce:      h.Nonce,
	}
}

type blockView struct {
	Header       headerView `yaml:"header"`
	Size         int        `yaml:"size"`
	Transactions []string   `yaml:"transactions"`
}

func newBlockView(b *wire.MsgBlock, height uint64) blockView {
	view := blockView{
		Header:       newHeaderView(&b.Header, height),
		Size:         b.SerializeSize(),
		Transactions: make([]string, 0, len(b.Transactions)),
	}
	for _, tx := range b.Transactions {
		view.Transactions = append(view.Transactions, tx.TxHash().String())
	}
	return view
}

type transactionView struct {
	Hash     string       `yaml:"hash"`
	Height   *uint64      `yaml:"height,omitempty"`
	Position *uint64      `yaml:"position,omitempty"`
	Version  int32        `yaml:"version"`
	LockTime uint32       `yaml:"locktime"`
	Size     int          `yaml:"size"`
	Coinbase bool         `yaml:"coinbase"`
	Inputs   []inputView  `yaml:"inputs"`
	Outputs  []outputView `yaml:"outputs"`
}

type inputView struct {
	PreviousOutput string `yaml:"previous_output"`
	Sequence       uint32 `yaml:"sequence"`
	Script         string `yaml:"script"`
}

type outputView struct {
	Value  int64  `yaml:"value"`
	Script string `yaml:"script"`
	Class  string `yaml:"class"`
}

func newTransactionView(tx *wire.MsgTx, height, position uint64) transactionView {
	view := transactionView{
		Hash:     tx.TxHash().String(),
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Size:     tx.SerializeSize(),
		Coinbase: chain.IsCoinbase(tx),
		Inputs:   make([]inputView, 0, len(tx.TxIn)),
		Outputs:  make([]outputView, 0, len(tx.TxOut)),
	}
	if height != chain.Unconfirmed {
		view.Height, view.Position = &height, &position
	}
	for _, in := range tx.TxIn {
		view.Inputs = append(view.Inputs, inputView{
			PreviousOutput: in.PreviousOutPoint.String(),
			Sequence:       in.Sequence,
			Script:         hex.EncodeToString(in.SignatureScript),
		})
	}
	for _, out := range tx.TxOut {
		view.Outputs = append(view.Outputs, newOutputView(out))
	}
	return view
}

func newOutputView(out *wire.TxOut) outputView {
	return outputView{
		Value:  out.Value,
		Script: chain.Script(out.PkScript).String(),
		Class:  chain.Script(out.PkScript).Class(),
	}
}
