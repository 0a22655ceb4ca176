package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const CartServiceName = "cart.CartService"

type CartServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddItem(context.Context, *AddItemRequest) (*Cart, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error)
	ClearCart(context.Context, *ClearCartRequest) (*Cart, error)
}

var CartServiceDesc = grpc.ServiceDesc{
	ServiceName: CartServiceName,
	HandlerType: (*CartServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CartServiceName, "GetCart", CartServer.GetCart),
		unary(CartServiceName, "AddItem", CartServer.AddItem),
		unary(CartServiceName, "RemoveItem", CartServer.RemoveItem),
		unary(CartServiceName, "ClearCart", CartServer.ClearCart),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cart",
}

func RegisterCartServer(s grpc.ServiceRegistrar, srv CartServer) {
	s.RegisterService(&CartServiceDesc, srv)
}

type CartClient struct {
	cc grpc.ClientConnInterface
}

func NewCartClient(cc grpc.ClientConnInterface) *CartClient {
	return &CartClient{cc: cc}
}

func (c *CartClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, fullMethod(CartServiceName, "GetCart"), in, opts)
}

func (c *CartClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, fullMethod(CartServiceName, "AddItem"), in, opts)
}

func (c *CartClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, fullMethod(CartServiceName, "RemoveItem"), in, opts)
}

func (c *CartClient) ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return invoke[Cart](ctx, c.cc, fullMethod(CartServiceName, "ClearCart"), in, opts)
}
