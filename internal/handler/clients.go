package handler

import (
	"context"

	"google.golang.org/grpc"

	"shopcore/internal/rpc"
)

// gatewayが呼ぶgRPCクライアント。rpc.*Client がそのまま満たす。

type CatalogClient interface {
	GetProduct(ctx context.Context, in *rpc.GetProductRequest, opts ...grpc.CallOption) (*rpc.Product, error)
	ListProducts(ctx context.Context, in *rpc.ListProductsRequest, opts ...grpc.CallOption) (*rpc.ListProductsResponse, error)
	CreateProduct(ctx context.Context, in *rpc.CreateProductRequest, opts ...grpc.CallOption) (*rpc.Product, error)
}

type CartClient interface {
	GetCart(ctx context.Context, in *rpc.GetCartRequest, opts ...grpc.CallOption) (*rpc.Cart, error)
	AddItem(ctx context.Context, in *rpc.AddItemRequest, opts ...grpc.CallOption) (*rpc.Cart, error)
	RemoveItem(ctx context.Context, in *rpc.RemoveItemRequest, opts ...grpc.CallOption) (*rpc.Cart, error)
	ClearCart(ctx context.Context, in *rpc.ClearCartRequest, opts ...grpc.CallOption) (*rpc.Cart, error)
}

type OrderClient interface {
	CreateOrder(ctx context.Context, in *rpc.CreateOrderRequest, opts ...grpc.CallOption) (*rpc.Order, error)
	GetOrder(ctx context.Context, in *rpc.GetOrderRequest, opts ...grpc.CallOption) (*rpc.Order, error)
	ListOrdersByUser(ctx context.Context, in *rpc.ListOrdersByUserRequest, opts ...grpc.CallOption) (*rpc.ListOrdersByUserResponse, error)
}
