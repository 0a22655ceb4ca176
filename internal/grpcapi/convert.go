package grpcapi

import (
	"time"

	"shopcore/internal/domain/model"
	"shopcore/internal/rpc"
)

func cartToRPC(c model.Cart) *rpc.Cart {
	items := make([]rpc.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, rpc.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
		})
	}
	return &rpc.Cart{UserID: c.UserID, Items: items, Total: c.Total}
}

func orderToRPC(o model.Order) rpc.Order {
	items := make([]rpc.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, rpc.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
		})
	}
	return rpc.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func productToRPC(p model.Product) rpc.Product {
	return rpc.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
