package grpcapi

import (
	"context"
	"log/slog"

	"shopcore/internal/rpc"
	"shopcore/internal/usecase"
)

type OrderServer struct {
	uc  *usecase.OrderUsecase
	log *slog.Logger
}

func NewOrderServer(uc *usecase.OrderUsecase, log *slog.Logger) *OrderServer {
	if log == nil {
		log = slog.Default()
	}
	return &OrderServer{uc: uc, log: log}
}

func (s *OrderServer) CreateOrder(ctx context.Context, req *rpc.CreateOrderRequest) (*rpc.Order, error) {
	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int64(it.Quantity),
			UnitPrice:   it.UnitPrice,
		})
	}

	o, err := s.uc.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID: req.UserID,
		Items:  items,
		Total:  req.Total,
	})
	if err != nil {
		return nil, toStatus(ctx, s.log, "create order", err)
	}
	out := orderToRPC(o)
	return &out, nil
}

func (s *OrderServer) GetOrder(ctx context.Context, req *rpc.GetOrderRequest) (*rpc.Order, error) {
	o, err := s.uc.GetOrder(ctx, req.ID)
	if err != nil {
		return nil, toStatus(ctx, s.log, "get order", err)
	}
	out := orderToRPC(o)
	return &out, nil
}

func (s *OrderServer) ListOrdersByUser(ctx context.Context, req *rpc.ListOrdersByUserRequest) (*rpc.ListOrdersByUserResponse, error) {
	res, err := s.uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{
		UserID:    req.UserID,
		PageInput: usecase.PageInput{Page: int(req.Page), PageSize: int(req.PageSize)},
	})
	if err != nil {
		return nil, toStatus(ctx, s.log, "list orders", err)
	}

	orders := make([]rpc.Order, 0, len(res.Orders))
	for _, o := range res.Orders {
		orders = append(orders, orderToRPC(o))
	}
	return &rpc.ListOrdersByUserResponse{Orders: orders, TotalCount: res.TotalCount}, nil
}
