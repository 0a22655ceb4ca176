package grpcapi

import (
	"context"
	"log/slog"

	"shopcore/internal/rpc"
	"shopcore/internal/usecase"
)

type CartServer struct {
	uc  *usecase.CartUsecase
	log *slog.Logger
}

func NewCartServer(uc *usecase.CartUsecase, log *slog.Logger) *CartServer {
	if log == nil {
		log = slog.Default()
	}
	return &CartServer{uc: uc, log: log}
}

func (s *CartServer) GetCart(ctx context.Context, req *rpc.GetCartRequest) (*rpc.Cart, error) {
	c, err := s.uc.GetCart(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(ctx, s.log, "get cart", err)
	}
	return cartToRPC(c), nil
}

func (s *CartServer) AddItem(ctx context.Context, req *rpc.AddItemRequest) (*rpc.Cart, error) {
	c, err := s.uc.AddItem(ctx, usecase.AddItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  int64(req.Quantity),
	})
	if err != nil {
		return nil, toStatus(ctx, s.log, "add item", err)
	}
	return cartToRPC(c), nil
}

func (s *CartServer) RemoveItem(ctx context.Context, req *rpc.RemoveItemRequest) (*rpc.Cart, error) {
	c, err := s.uc.RemoveItem(ctx, req.UserID, req.ProductID)
	if err != nil {
		return nil, toStatus(ctx, s.log, "remove item", err)
	}
	return cartToRPC(c), nil
}

func (s *CartServer) ClearCart(ctx context.Context, req *rpc.ClearCartRequest) (*rpc.Cart, error) {
	c, err := s.uc.ClearCart(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(ctx, s.log, "clear cart", err)
	}
	return cartToRPC(c), nil
}
