package transport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"google.golang.org/grpc"
)

// Client calls a remote ChainService. Its methods mirror the blocking
// query API: a nonzero response code is returned as a chain.Code error.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to addr.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})))
	cc, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) GetLastHeight(ctx context.Context) (uint64, error) {
	resp := new(HeightResponse)
	if err := c.cc.Invoke(ctx, fullMethod("GetLastHeight"), &LastHeightRequest{}, resp); err != nil {
		return 0, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return 0, err
	}
	return resp.Height, nil
}

func (c *Client) GetBlockHeight(ctx context.Context, hash chainhash.Hash) (uint64, error) {
	resp := new(HeightResponse)
	if err := c.cc.Invoke(ctx, fullMethod("GetBlockHeight"), &HashRequest{Hash: hash[:]}, resp); err != nil {
		return 0, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return 0, err
	}
	return resp.Height, nil
}

func (c *Client) GetBlockHeader(ctx context.Context, height uint64) (*wire.BlockHeader, uint64, error) {
	return c.header(ctx, "GetBlockHeader", &HeightRequest{Height: height})
}

func (c *Client) GetBlockHeaderByHash(ctx context.Context, hash chainhash.Hash) (*wire.BlockHeader, uint64, error) {
	return c.header(ctx, "GetBlockHeaderByHash", &HashRequest{Hash: hash[:]})
}

func (c *Client) GetBlock(ctx context.Context, height uint64) (*wire.MsgBlock, uint64, error) {
	return c.block(ctx, "GetBlock", &HeightRequest{Height: height})
}

func (c *Client) GetBlockByHash(ctx context.Context, hash chainhash.Hash) (*wire.MsgBlock, uint64, error) {
	return c.block(ctx, "GetBlockByHash", &HashRequest{Hash: hash[:]})
}

func (c *Client) GetTransaction(ctx context.Context, hash chainhash.Hash, requireConfirmed bool) (*wire.MsgTx, uint64, uint64, error) {
	resp := new(TransactionResponse)
	req := &TransactionRequest{Hash: hash[:], RequireConfirmed: requireConfirmed}
	if err := c.cc.Invoke(ctx, fullMethod("GetTransaction"), req, resp); err != nil {
		return nil, 0, 0, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return nil, 0, 0, err
	}
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(resp.Transaction)); err != nil {
		return nil, 0, 0, fmt.Errorf("decode transaction %s: %w", hash, err)
	}
	return &tx, resp.Height, resp.Position, nil
}

func (c *Client) GetOutput(ctx context.Context, point wire.OutPoint, requireConfirmed bool) (*wire.TxOut, error) {
	resp := new(OutputResponse)
	req := &OutputRequest{Hash: point.Hash[:], Index: point.Index, RequireConfirmed: requireConfirmed}
	if err := c.cc.Invoke(ctx, fullMethod("GetOutput"), req, resp); err != nil {
		return nil, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return nil, err
	}
	return wire.NewTxOut(resp.Value, resp.Script), nil
}

func (c *Client) header(ctx context.Context, method string, req any) (*wire.BlockHeader, uint64, error) {
	resp := new(HeaderResponse)
	if err := c.cc.Invoke(ctx, fullMethod(method), req, resp); err != nil {
		return nil, 0, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return nil, 0, err
	}
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(resp.Header)); err != nil {
		return nil, 0, fmt.Errorf("decode header: %w", err)
	}
	return &header, resp.Height, nil
}

func (c *Client) block(ctx context.Context, method string, req any) (*wire.MsgBlock, uint64, error) {
	resp := new(BlockResponse)
	if err := c.cc.Invoke(ctx, fullMethod(method), req, resp); err != nil {
		return nil, 0, err
	}
	if err := chain.Code(resp.Code).Err(); err != nil {
		return nil, 0, err
	}
	var block wire.MsgBlock
	if err := block.Deserialize(bytes.NewReader(resp.Block)); err != nil {
		return nil, 0, fmt.Errorf("decode block: %w", err)
	}
	return &block, resp.Height, nil
}
