package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const CatalogServiceName = "catalog.CatalogService"

type CatalogServer interface {
	GetProduct(context.Context, *GetProductRequest) (*Product, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*Product, error)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CatalogServiceName, "GetProduct", CatalogServer.GetProduct),
		unary(CatalogServiceName, "ListProducts", CatalogServer.ListProducts),
		unary(CatalogServiceName, "CreateProduct", CatalogServer.CreateProduct),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog",
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

type CatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func (c *CatalogClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, fullMethod(CatalogServiceName, "GetProduct"), in, opts)
}

func (c *CatalogClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, fullMethod(CatalogServiceName, "ListProducts"), in, opts)
}

func (c *CatalogClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, fullMethod(CatalogServiceName, "CreateProduct"), in, opts)
}
