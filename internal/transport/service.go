package transport

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "chainexec.v1.ChainService"

// ChainServiceServer is the server side of chainexec.v1.ChainService.
type ChainServiceServer interface {
	GetLastHeight(context.Context, *LastHeightRequest) (*HeightResponse, error)
	GetBlockHeight(context.Context, *HashRequest) (*HeightResponse, error)
	GetBlockHeader(context.Context, *HeightRequest) (*HeaderResponse, error)
	GetBlockHeaderByHash(context.Context, *HashRequest) (*HeaderResponse, error)
	GetBlock(context.Context, *HeightRequest) (*BlockResponse, error)
	GetBlockByHash(context.Context, *HashRequest) (*BlockResponse, error)
	GetTransaction(context.Context, *TransactionRequest) (*TransactionResponse, error)
	GetOutput(context.Context, *OutputRequest) (*OutputResponse, error)
}

// RegisterChainServiceServer registers srv on s.
func RegisterChainServiceServer(s grpc.ServiceRegistrar, srv ChainServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ChainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLastHeight",
			Handler: unary("GetLastHeight", func(srv ChainServiceServer, ctx context.Context, req *LastHeightRequest) (any, error) {
				return srv.GetLastHeight(ctx, req)
			}),
		},
		{
			MethodName: "GetBlockHeight",
			Handler: unary("GetBlockHeight", func(srv ChainServiceServer, ctx context.Context, req *HashRequest) (any, error) {
				return srv.GetBlockHeight(ctx, req)
			}),
		},
		{
			MethodName: "GetBlockHeader",
			Handler: unary("GetBlockHeader", func(srv ChainServiceServer, ctx context.Context, req *HeightRequest) (any, error) {
				return srv.GetBlockHeader(ctx, req)
			}),
		},
		{
			MethodName: "GetBlockHeaderByHash",
			Handler: unary("GetBlockHeaderByHash", func(srv ChainServiceServer, ctx context.Context, req *HashRequest) (any, error) {
				return srv.GetBlockHeaderByHash(ctx, req)
			}),
		},
		{
			MethodName: "GetBlock",
			Handler: unary("GetBlock", func(srv ChainServiceServer, ctx context.Context, req *HeightRequest) (any, error) {
				return srv.GetBlock(ctx, req)
			}),
		},
		{
			MethodName: "GetBlockByHash",
			Handler: unary("GetBlockByHash", func(srv ChainServiceServer, ctx context.Context, req *HashRequest) (any, error) {
				return srv.GetBlockByHash(ctx, req)
			}),
		},
		{
			MethodName: "GetTransaction",
			Handler: unary("GetTransaction", func(srv ChainServiceServer, ctx context.Context, req *TransactionRequest) (any, error) {
				return srv.GetTransaction(ctx, req)
			}),
		},
		{
			MethodName: "GetOutput",
			Handler: unary("GetOutput", func(srv ChainServiceServer, ctx context.Context, req *OutputRequest) (any, error) {
				return srv.GetOutput(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chainexec/v1/chain_service",
}

// unary adapts a typed method to a grpc.MethodDesc handler that runs the
// server interceptor chain.
func unary[Req any](
	method string,
	call func(ChainServiceServer, context.Context, *Req) (any, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ChainServiceServer), ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ChainServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, req, info, handler)
	}
}

func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}
