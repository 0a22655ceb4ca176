package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shopcore/internal/domain/model"
)

// メモリ上のカート明細。ユーザーごとに追加順で持つ。
// 更新はすべて1つの mutex の中なので UpsertAdd は原子的。
type CartMemoryRepository struct {
	mu    sync.Mutex
	carts map[string][]model.CartItem
}

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[string][]model.CartItem)}
}

func (r *CartMemoryRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return []model.CartItem{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *CartMemoryRepository) UpsertAdd(ctx context.Context, item model.CartItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("upsert cart item: invalid quantity %d", item.Quantity)
	}

	if item.Quantity > model.MaxQuantity {
		item.Quantity = model.MaxQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	items := r.carts[item.UserID]
	for i := range items {
		if items[i].ProductID != item.ProductID {
			continue
		}
		// 既存ありだったら数量を増やす（上限で頭打ち）
		items[i].Quantity = min(items[i].Quantity+item.Quantity, model.MaxQuantity)
		if item.ProductName != "" {
			items[i].ProductName = item.ProductName
		}
		if !item.UnitPrice.IsZero() {
			items[i].UnitPrice = item.UnitPrice
		}
		items[i].UpdatedAt = now
		return nil
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	r.carts[item.UserID] = append(items, item)
	return nil
}

func (r *CartMemoryRepository) Delete(ctx context.Context, userID string, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			r.carts[userID] = append(items[:i:i], items[i+1:]...)
			break
		}
	}
	if len(r.carts[userID]) == 0 {
		delete(r.carts, userID)
	}
	return nil
}

func (r *CartMemoryRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
