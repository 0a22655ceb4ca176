package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const OrderServiceName = "order.OrderService"

type OrderServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*Order, error)
	GetOrder(context.Context, *GetOrderRequest) (*Order, error)
	ListOrdersByUser(context.Context, *ListOrdersByUserRequest) (*ListOrdersByUserResponse, error)
}

var OrderServiceDesc = grpc.ServiceDesc{
	ServiceName: OrderServiceName,
	HandlerType: (*OrderServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(OrderServiceName, "CreateOrder", OrderServer.CreateOrder),
		unary(OrderServiceName, "GetOrder", OrderServer.GetOrder),
		unary(OrderServiceName, "ListOrdersByUser", OrderServer.ListOrdersByUser),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "order",
}

func RegisterOrderServer(s grpc.ServiceRegistrar, srv OrderServer) {
	s.RegisterService(&OrderServiceDesc, srv)
}

type OrderClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderClient(cc grpc.ClientConnInterface) *OrderClient {
	return &OrderClient{cc: cc}
}

func (c *OrderClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return invoke[Order](ctx, c.cc, fullMethod(OrderServiceName, "CreateOrder"), in, opts)
}

func (c *OrderClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return invoke[Order](ctx, c.cc, fullMethod(OrderServiceName, "GetOrder"), in, opts)
}

func (c *OrderClient) ListOrdersByUser(ctx context.Context, in *ListOrdersByUserRequest, opts ...grpc.CallOption) (*ListOrdersByUserResponse, error) {
	return invoke[ListOrdersByUserResponse](ctx, c.cc, fullMethod(OrderServiceName, "ListOrdersByUser"), in, opts)
}
