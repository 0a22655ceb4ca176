package grpcapi

import (
	"context"
	"log/slog"

	"shopcore/internal/rpc"
	"shopcore/internal/usecase"
)

type CatalogServer struct {
	uc  *usecase.ProductUsecase
	log *slog.Logger
}

func NewCatalogServer(uc *usecase.ProductUsecase, log *slog.Logger) *CatalogServer {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogServer{uc: uc, log: log}
}

func (s *CatalogServer) GetProduct(ctx context.Context, req *rpc.GetProductRequest) (*rpc.Product, error) {
	p, err := s.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, toStatus(ctx, s.log, "get product", err)
	}
	out := productToRPC(p)
	return &out, nil
}

func (s *CatalogServer) ListProducts(ctx context.Context, req *rpc.ListProductsRequest) (*rpc.ListProductsResponse, error) {
	res, err := s.uc.ListProducts(ctx, usecase.PageInput{Page: int(req.Page), PageSize: int(req.PageSize)})
	if err != nil {
		return nil, toStatus(ctx, s.log, "list products", err)
	}

	products := make([]rpc.Product, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, productToRPC(p))
	}
	return &rpc.ListProductsResponse{Products: products, Total: res.Total}, nil
}

func (s *CatalogServer) CreateProduct(ctx context.Context, req *rpc.CreateProductRequest) (*rpc.Product, error) {
	p, err := s.uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, toStatus(ctx, s.log, "create product", err)
	}
	out := productToRPC(p)
	return &out, nil
}
