package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopcore/internal/domain/model"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カート明細を一覧取得
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, product_id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, fmt.Errorf("list cart items: %w", err)
	}

	return items, nil
}

// 同一商品は数量加算。INSERT ... ON CONFLICT で1文にまとめるので、
// 同時に追加されても数量が失われない。加算結果は MaxQuantity で頭打ち。
func (r *CartGormRepository) UpsertAdd(ctx context.Context, item model.CartItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("upsert cart item: invalid quantity %d", item.Quantity)
	}

	if item.Quantity > model.MaxQuantity {
		item.Quantity = model.MaxQuantity
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "quantity"}, Value: gorm.Expr("LEAST(cart_items.quantity + EXCLUDED.quantity, ?)", model.MaxQuantity)},
				{Column: clause.Column{Name: "product_name"}, Value: gorm.Expr("COALESCE(NULLIF(EXCLUDED.product_name, ''), cart_items.product_name)")},
				{Column: clause.Column{Name: "unit_price"}, Value: gorm.Expr("CASE WHEN EXCLUDED.unit_price <> 0 THEN EXCLUDED.unit_price ELSE cart_items.unit_price END")},
				{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("EXCLUDED.updated_at")},
			},
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// 明細を削除（無ければ何もしない）
func (r *CartGormRepository) Delete(ctx context.Context, userID string, productID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ユーザーの明細を全削除
func (r *CartGormRepository) DeleteByUserID(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
