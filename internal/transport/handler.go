package transport

import (
	"bytes"
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	_ ChainServiceServer = (*Handler)(nil)
	_ Querier            = (*Client)(nil)
)

// Handler answers ChainService calls from a Querier. Chain failures are
// reported through the response code; only malformed requests and
// encoding failures become gRPC errors.
type Handler struct {
	querier Querier
	logger  *zap.Logger
}

func NewHandler(querier Querier, logger *zap.Logger) *Handler {
	return &Handler{querier: querier, logger: logger.Named("transport")}
}

func (h *Handler) GetLastHeight(ctx context.Context, _ *LastHeightRequest) (*HeightResponse, error) {
	height, err := h.querier.GetLastHeight(ctx)
	return &HeightResponse{Code: code(err), Height: height}, nil
}

func (h *Handler) GetBlockHeight(ctx context.Context, req *HashRequest) (*HeightResponse, error) {
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	height, err := h.querier.GetBlockHeight(ctx, hash)
	return &HeightResponse{Code: code(err), Height: height}, nil
}

func (h *Handler) GetBlockHeader(ctx context.Context, req *HeightRequest) (*HeaderResponse, error) {
	header, height, err := h.querier.GetBlockHeader(ctx, req.Height)
	return h.headerResponse(header, height, err)
}

func (h *Handler) GetBlockHeaderByHash(ctx context.Context, req *HashRequest) (*HeaderResponse, error) {
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	header, height, err := h.querier.GetBlockHeaderByHash(ctx, hash)
	return h.headerResponse(header, height, err)
}

func (h *Handler) GetBlock(ctx context.Context, req *HeightRequest) (*BlockResponse, error) {
	block, height, err := h.querier.GetBlock(ctx, req.Height)
	return h.blockResponse(block, height, err)
}

func (h *Handler) GetBlockByHash(ctx context.Context, req *HashRequest) (*BlockResponse, error) {
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	block, height, err := h.querier.GetBlockByHash(ctx, hash)
	return h.blockResponse(block, height, err)
}

func (h *Handler) GetTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error) {
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	tx, height, position, err := h.querier.GetTransaction(ctx, hash, req.RequireConfirmed)
	if err != nil {
		return &TransactionResponse{Code: code(err)}, nil
	}
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		h.logger.Error("serialize transaction", zap.Stringer("hash", hash), zap.Error(err))
		return nil, status.Error(codes.Internal, "serialize transaction")
	}
	return &TransactionResponse{Transaction: buf.Bytes(), Height: height, Position: position}, nil
}

func (h *Handler) GetOutput(ctx context.Context, req *OutputRequest) (*OutputResponse, error) {
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	output, err := h.querier.GetOutput(ctx, wire.OutPoint{Hash: hash, Index: req.Index}, req.RequireConfirmed)
	if err != nil {
		return &OutputResponse{Code: code(err)}, nil
	}
	return &OutputResponse{Value: output.Value, Script: output.PkScript}, nil
}

func (h *Handler) headerResponse(header *wire.BlockHeader, height uint64, err error) (*HeaderResponse, error) {
	if err != nil {
		return &HeaderResponse{Code: code(err)}, nil
	}
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		h.logger.Error("serialize header", zap.Uint64("height", height), zap.Error(err))
		return nil, status.Error(codes.Internal, "serialize header")
	}
	return &HeaderResponse{Header: buf.Bytes(), Height: height}, nil
}

func (h *Handler) blockResponse(block *wire.MsgBlock, height uint64, err error) (*BlockResponse, error) {
	if err != nil {
		return &BlockResponse{Code: code(err)}, nil
	}
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		h.logger.Error("serialize block", zap.Uint64("height", height), zap.Error(err))
		return nil, status.Error(codes.Internal, "serialize block")
	}
	return &BlockResponse{Block: buf.Bytes(), Height: height}, nil
}

func parseHash(raw []byte) (chainhash.Hash, error) {
	hash, err := chainhash.NewHash(raw)
	if err != nil {
		return chainhash.Hash{}, status.Errorf(codes.InvalidArgument, "hash must be %d bytes", chainhash.HashSize)
	}
	return *hash, nil
}

func code(err error) int32 {
	return int32(chain.CodeOf(err))
}
