package main

import (
	"context"
	"log/slog"
	"os"

	"google.golang.org/grpc"

	"shopcore/internal/config"
	"shopcore/internal/handler"
	"shopcore/internal/logger"
	"shopcore/internal/metrics"
	"shopcore/internal/middleware"
	"shopcore/internal/rpc"
	"shopcore/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		return 1
	}
	log := logger.New(logger.Options{Service: "gateway", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := server.WithSignals(context.Background())
	defer cancel()

	//各サービスへの接続（遅延接続なので起動順は問わない）
	catalogConn, err := dial(log, cfg.CatalogAddr)
	if err != nil {
		return 1
	}
	defer catalogConn.Close()
	cartConn, err := dial(log, cfg.CartAddr)
	if err != nil {
		return 1
	}
	defer cartConn.Close()
	orderConn, err := dial(log, cfg.OrderAddr)
	if err != nil {
		return 1
	}
	defer orderConn.Close()

	catalogClient := rpc.NewCatalogClient(catalogConn)
	cartClient := rpc.NewCartClient(cartConn)
	orderClient := rpc.NewOrderClient(orderConn)

	reg := metrics.NewRegistry("gateway")
	e := server.NewGateway(log, reg, cfg.RPCTimeout, server.GatewayHandlers{
		Products: handler.NewProductHandler(catalogClient),
		Carts:    handler.NewCartHandler(cartClient, orderClient, log),
		Orders:   handler.NewOrderHandler(orderClient),
	})

	if err := server.RunHTTP(ctx, log, e, cfg.HTTPAddr, cfg.ShutdownTimeout); err != nil {
		log.Error("gateway stopped", slog.Any("err", err))
		return 1
	}
	log.Info("bye")
	return 0
}

func dial(log *slog.Logger, addr string) (*grpc.ClientConn, error) {
	conn, err := rpc.Dial(addr, grpc.WithChainUnaryInterceptor(middleware.UnaryClientRequestID()))
	if err != nil {
		log.Error("dial failed", slog.String("addr", addr), slog.Any("err", err))
		return nil, err
	}
	return conn, nil
}
