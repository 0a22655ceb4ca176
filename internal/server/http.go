package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shopcore/internal/metrics"
)

// ReadyFunc reports whether the process can serve traffic (db reachable etc).
type ReadyFunc func(ctx context.Context) error

// NewOps builds the operational endpoint: /healthz, /readyz, /metrics.
func NewOps(reg *metrics.Registry, ready ReadyFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if ready != nil {
			if err := ready(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})
	if reg != nil {
		e.GET("/metrics", echo.WrapHandler(reg.Handler()))
	}
	return e
}

// RunHTTP starts e on addr and shuts it down when ctx is done.
func RunHTTP(ctx context.Context, log *slog.Logger, e *echo.Echo, addr string, stopTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http starting", slog.String("addr", addr))
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := e.Shutdown(stopCtx); err != nil {
		log.Warn("http shutdown", slog.String("addr", addr), slog.Any("err", err))
		return e.Close()
	}
	return nil
}
