package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shopcore/internal/domain/model"
	"shopcore/internal/infra/db"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.OrderItem, len(items))
	for i := range items {
		rows[i] = items[i]
		rows[i].ID = 0
		rows[i].OrderID = orderID
		rows[i].Position = i
		rows[i].Order = nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("insert order items: order %s has no header: %w", orderID, err)
		}
		return fmt.Errorf("insert order items: %w", err)
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position asc, id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}
