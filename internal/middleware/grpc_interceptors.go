package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// handler の panic を codes.Internal にする
func UnaryRecover(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(ctx, "grpc panic",
					slog.String("method", info.FullMethod),
					slog.Any("panic", fmt.Sprint(r)),
					slog.String("stack", string(debug.Stack())),
				)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// 呼び出し元の request id を引き継いで1呼び出し1行ログを出す
func UnaryLogging(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := requestIDFromIncoming(ctx)
		if rid != "" {
			ctx = WithRequestID(ctx, rid)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []slog.Attr{
			slog.String("request_id", rid),
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("latency", time.Since(start)),
		}
		level := slog.LevelInfo
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument:
		default:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Any("err", err))
		}
		log.LogAttrs(ctx, level, "grpc call", attrs...)
		return resp, err
	}
}
