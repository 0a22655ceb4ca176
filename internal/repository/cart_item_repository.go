package repository

import (
	"context"

	"shopcore/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	// 同一商品は数量を加算する。存在確認と更新は1回のストレージ操作で行う。
	// ProductName が空、UnitPrice がゼロなら既存のスナップショットを残す。
	UpsertAdd(ctx context.Context, item model.CartItem) error
	// 無くてもエラーにしない
	Delete(ctx context.Context, userID string, productID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
