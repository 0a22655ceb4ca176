package repository

import (
	"context"

	"shopcore/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error
	// Position の昇順
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error)
}
