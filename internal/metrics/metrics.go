package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Registry holds the process-local collectors. Each binary owns one.
type Registry struct {
	reg *prometheus.Registry

	RPCHandled  *prometheus.CounterVec
	RPCLatency  *prometheus.HistogramVec
	HTTPHandled *prometheus.CounterVec
	HTTPLatency *prometheus.HistogramVec
}

func NewRegistry(service string) *Registry {
	r := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	rpcHandled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "shop_grpc_handled_total",
		ConstLabels: constLabels,
	}, []string{"method", "code"})
	rpcLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "shop_grpc_handling_seconds",
		ConstLabels: constLabels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"method"})
	httpHandled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "shop_http_requests_total",
		ConstLabels: constLabels,
	}, []string{"method", "route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "shop_http_request_seconds",
		ConstLabels: constLabels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.MustRegister(
		rpcHandled, rpcLatency, httpHandled, httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:         r,
		RPCHandled:  rpcHandled,
		RPCLatency:  rpcLatency,
		HTTPHandled: httpHandled,
		HTTPLatency: httpLatency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		r.RPCLatency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		r.RPCHandled.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// EchoMiddleware records by route pattern so path params do not explode cardinality.
func (r *Registry) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			r.HTTPLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			r.HTTPHandled.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			return nil
		}
	}
}
