package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id" // string

	mdRequestID = "x-request-id"
)

type requestIDKey struct{}

// RequestID はヘッダの X-Request-ID を引き継ぐ。無ければ uuid を振る。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := strings.TrimSpace(c.Request().Header.Get(HeaderRequestID))
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(CtxRequestIDKey, rid)
			c.Response().Header().Set(HeaderRequestID, rid)
			c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), rid)))

			return next(c)
		}
	}
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID か gRPC インターセプタが入れたIDを取り出す
func RequestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// 下流サービスへ request id を引き回す
func UnaryClientRequestID() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if rid := RequestIDFrom(ctx); rid != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, mdRequestID, rid)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func requestIDFromIncoming(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(mdRequestID); len(v) > 0 {
		return v[0]
	}
	return ""
}
