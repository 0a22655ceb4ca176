package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"shopcore/internal/config"
	"shopcore/internal/domain/model"
	"shopcore/internal/grpcapi"
	"shopcore/internal/infra/db"
	infraRepo "shopcore/internal/infra/repository"
	"shopcore/internal/logger"
	"shopcore/internal/metrics"
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
	cfg, err := config.Load(":50051")
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		return 1
	}
	log := logger.New(logger.Options{Service: "catalog", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := server.WithSignals(context.Background())
	defer cancel()

	//リポジトリ（postgres か memory）
	var (
		productRepo repo.ProductRepository
		ready       server.ReadyFunc
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		productRepo = infraRepo.NewProductMemoryRepository()
	default:
		gormDB, err := db.Connect(cfg.Postgres)
		if err != nil {
			log.Error("db open failed", slog.Any("err", err))
			return 1
		}
		defer db.Close(gormDB)
		if err := db.Migrate(gormDB, &model.Product{}); err != nil {
			log.Error("migrate failed", slog.Any("err", err))
			return 1
		}
		productRepo = infraRepo.NewProductGormRepository(gormDB)
		ready = db.Ping(gormDB)
	}

	//ユースケース / gRPC
	productUC := usecase.NewProductUsecase(productRepo, usecase.UUIDGenerator{})
	reg := metrics.NewRegistry("catalog")
	grpcServer := server.NewGRPCServer(log, reg)
	rpc.RegisterCatalogServer(grpcServer.Server, grpcapi.NewCatalogServer(productUC, log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.RunGRPC(gctx, log, grpcServer, cfg.GRPCAddr, cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		return server.RunHTTP(gctx, log, server.NewOps(reg, ready), cfg.OpsAddr, cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("catalog stopped", slog.Any("err", err))
		return 1
	}
	log.Info("bye")
	return 0
}
