package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = RequestIDFrom(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "rid-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "rid-123", seen)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestID(), AccessLog(log))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, buf.String(), `"status":503`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestUnaryClientRequestID(t *testing.T) {
	ic := UnaryClientRequestID()
	ctx := WithRequestID(context.Background(), "rid-9")

	err := ic(ctx, "/x/Y", nil, nil, nil, func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		assert.Equal(t, []string{"rid-9"}, md.Get("x-request-id"))
		return nil
	})
	require.NoError(t, err)
}

func TestUnaryLoggingPicksUpRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "rid-7"))

	var inner string
	_, err := UnaryLogging(log)(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/cart.CartService/GetCart"},
		func(ctx context.Context, req any) (any, error) {
			inner = RequestIDFrom(ctx)
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "rid-7", inner)
	assert.Contains(t, buf.String(), `"request_id":"rid-7"`)
}

func TestUnaryRecover(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	_, err := UnaryRecover(log)(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(ctx context.Context, req any) (any, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))
}
