package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"shopcore/internal/config"
	"shopcore/internal/domain/model"
	"shopcore/internal/events"
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

type eventPublisher interface {
	usecase.OrderEventPublisher
	Close() error
}

func main() {
	os.Exit(run())
}

// run は終了コードを返す。
func run() int {
	cfg, err := config.Load(":50052")
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		return 1
	}
	log := logger.New(logger.Options{Service: "order", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := server.WithSignals(context.Background())
	defer cancel()

	var (
		txm   repo.TransactionManager
		ready server.ReadyFunc
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		txm = infraRepo.NewOrderMemoryStore()
	default:
		gormDB, err := db.Connect(cfg.Postgres)
		if err != nil {
			log.Error("db open failed", slog.Any("err", err))
			return 1
		}
		defer db.Close(gormDB)
		//order_items は orders を参照するので順番に
		if err := db.Migrate(gormDB, &model.Order{}, &model.OrderItem{}); err != nil {
			log.Error("migrate failed", slog.Any("err", err))
			return 1
		}
		txm = infraRepo.NewTxManagerGorm(gormDB)
		ready = db.Ping(gormDB)
	}

	//注文イベント（KAFKA_BROKERS が無ければ送らない）
	var publisher eventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		log.Info("order events enabled", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.OrderEventsTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("close publisher", slog.Any("err", err))
		}
	}()

	orderUC := usecase.NewOrderUsecase(txm, publisher, usecase.UUIDGenerator{}, usecase.SystemClock{}, log)
	reg := metrics.NewRegistry("order")
	grpcServer := server.NewGRPCServer(log, reg)
	rpc.RegisterOrderServer(grpcServer.Server, grpcapi.NewOrderServer(orderUC, log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.RunGRPC(gctx, log, grpcServer, cfg.GRPCAddr, cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		return server.RunHTTP(gctx, log, server.NewOps(reg, ready), cfg.OpsAddr, cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("order stopped", slog.Any("err", err))
		return 1
	}
	log.Info("bye")
	return 0
}
