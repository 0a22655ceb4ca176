package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopcore/internal/handler"
	"shopcore/internal/metrics"
	"shopcore/internal/middleware"
)

type GatewayHandlers struct {
	Products *handler.ProductHandler
	Carts    *handler.CartHandler
	Orders   *handler.OrderHandler
}

// NewGateway builds the public HTTP API. /healthz and /metrics are served on
// the same listener so a single port is enough for local runs.
func NewGateway(log *slog.Logger, reg *metrics.Registry, rpcTimeout time.Duration, h GatewayHandlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(log))
	if reg != nil {
		e.Use(reg.EchoMiddleware())
		e.GET("/metrics", echo.WrapHandler(reg.Handler()))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api", middleware.RequestTimeout(rpcTimeout))
	h.Products.RegisterRoutes(api)
	h.Carts.RegisterRoutes(api)
	h.Orders.RegisterRoutes(api)

	return e
}
