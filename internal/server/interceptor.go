package server

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/audittax/audittax/internal/common"
)

// UnaryRequestID tags every unary call with a request id and logs its
// outcome.
func UnaryRequestID(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.New().String())
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				zap.String("method", info.FullMethod),
				zap.String("request_id", common.RequestIDFromContext(ctx)),
				zap.Error(err))
		}
		return resp, err
	}
}

// StreamRequestID does the same for streaming calls.
func StreamRequestID(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := common.WithRequestID(ss.Context(), uuid.New().String())
		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
		if err != nil {
			logger.Warn("stream ended with error",
				zap.String("method", info.FullMethod),
				zap.String("request_id", common.RequestIDFromContext(ctx)),
				zap.Error(err))
		}
		return err
	}
}

type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }
