package rpc

import "github.com/shopspring/decimal"

// Item is the line item shape shared by carts and orders.
type Item struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Cart struct {
	UserID string          `json:"user_id"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

type GetCartRequest struct {
	UserID string `json:"user_id"`
}

type AddItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type RemoveItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

type ClearCartRequest struct {
	UserID string `json:"user_id"`
}

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type CreateOrderRequest struct {
	UserID string          `json:"user_id"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

type GetOrderRequest struct {
	ID string `json:"id"`
}

type ListOrdersByUserRequest struct {
	UserID   string `json:"user_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type ListOrdersByUserResponse struct {
	Orders     []Order `json:"orders"`
	TotalCount int64   `json:"total_count"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type ListProductsRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

type ListProductsResponse struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
}
