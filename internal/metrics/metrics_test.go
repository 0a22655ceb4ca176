package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func counterValue(t *testing.T, r *Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestUnaryServerInterceptor(t *testing.T) {
	r := NewRegistry("test")
	ic := r.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/cart.CartService/GetCart"}

	_, err := ic(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	_, err = ic(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "x")
	})
	require.Error(t, err)

	assert.Equal(t, 1.0, counterValue(t, r, "shop_grpc_handled_total", map[string]string{"method": info.FullMethod, "code": "OK"}))
	assert.Equal(t, 1.0, counterValue(t, r, "shop_grpc_handled_total", map[string]string{"method": info.FullMethod, "code": "NotFound"}))
}

func TestEchoMiddlewareAndHandler(t *testing.T) {
	r := NewRegistry("test")
	e := echo.New()
	e.Use(r.EchoMiddleware())
	e.GET("/api/orders/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/metrics", echo.WrapHandler(r.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, counterValue(t, r, "shop_http_requests_total", map[string]string{"route": "/api/orders/:id", "status": "204"}))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `shop_http_requests_total{method="GET",route="/api/orders/:id",service="test",status="204"} 1`))
}
