package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"shopcore/internal/config"
	"shopcore/internal/domain/model"
	"shopcore/internal/grpcapi"
	"shopcore/internal/infra/catalog"
	"shopcore/internal/infra/db"
	infraRepo "shopcore/internal/infra/repository"
	"shopcore/internal/logger"
	"shopcore/internal/metrics"
	"shopcore/internal/middleware"
	repo "shopcore/internal/repository"
	"shopcore/internal/rpc"
	"shopcore/internal/server"
	"shopcore/internal/usecase"
)

func main() {
	os.Exit(run())
}

// run は終了コードを返す。
func run() int {
	cfg, err := config.Load(":50054")
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		return 1
	}
	log := logger.New(logger.Options{Service: "cart", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := server.WithSignals(context.Background())
	defer cancel()

	var (
		cartRepo repo.CartItemRepository
		ready    server.ReadyFunc
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		cartRepo = infraRepo.NewCartMemoryRepository()
	default:
		gormDB, err := db.Connect(cfg.Postgres)
		if err != nil {
			log.Error("db open failed", slog.Any("err", err))
			return 1
		}
		defer db.Close(gormDB)
		if err := db.Migrate(gormDB, &model.CartItem{}); err != nil {
			log.Error("migrate failed", slog.Any("err", err))
			return 1
		}
		cartRepo = infraRepo.NewCartGormRepository(gormDB)
		ready = db.Ping(gormDB)
	}

	//カタログへの接続（遅延接続なので起動順は問わない）
	catalogConn, err := rpc.Dial(cfg.CatalogAddr,
		grpc.WithChainUnaryInterceptor(middleware.UnaryClientRequestID()),
	)
	if err != nil {
		log.Error("catalog dial failed", slog.Any("err", err))
		return 1
	}
	defer catalogConn.Close()

	cartUC := usecase.NewCartUsecase(cartRepo, catalog.NewLookup(catalogConn, cfg.CatalogTimeout))
	reg := metrics.NewRegistry("cart")
	grpcServer := server.NewGRPCServer(log, reg)
	rpc.RegisterCartServer(grpcServer.Server, grpcapi.NewCartServer(cartUC, log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.RunGRPC(gctx, log, grpcServer, cfg.GRPCAddr, cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		return server.RunHTTP(gctx, log, server.NewOps(reg, ready), cfg.OpsAddr, cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("cart stopped", slog.Any("err", err))
		return 1
	}
	log.Info("bye")
	return 0
}
