package transport

import (
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// NewServer builds a gRPC server serving ChainService from querier.
func NewServer(querier Querier, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	opts = append(opts, grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)))
	server := grpc.NewServer(opts...)

	RegisterChainServiceServer(server, NewHandler(querier, logger))
	grpcPrometheus.Register(server)
	return server
}
