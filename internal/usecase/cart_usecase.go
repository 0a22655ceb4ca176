package usecase

import (
	"context"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
)

// カートの業務ロジック。カタログ参照→数量加算の upsert→再読込の順で処理する。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	catalog      repo.ProductLookup
}

// DI
func NewCartUsecase(cartItemRepo repo.CartItemRepository, catalog repo.ProductLookup) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		catalog:      catalog,
	}
}

// GetCart は明細を読み、合計を毎回計算し直す。明細が無ければ空のカート。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	userID, err := requireID("user_id", userID)
	if err != nil {
		return model.Cart{}, err
	}
	return u.loadCart(ctx, userID)
}

// AddItem はカートに追加（同一商品は数量加算）。
// 価格と商品名は追加時点のカタログ値を保存する。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (model.Cart, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Cart{}, err
	}

	// カタログで商品を解決。失敗したら何も書かない
	p, err := u.catalog.GetProduct(ctx, in.ProductID)
	if err != nil {
		return model.Cart{}, NotFound("product not found: "+in.ProductID, err)
	}
	if p.ID == "" {
		return model.Cart{}, NotFound("product not found: "+in.ProductID, repo.ErrNotFound)
	}

	item := model.CartItem{
		UserID:      in.UserID,
		ProductID:   in.ProductID,
		ProductName: p.Name,
		Quantity:    in.Quantity,
		UnitPrice:   p.Price,
	}
	if err := u.cartItemRepo.UpsertAdd(ctx, item); err != nil {
		return model.Cart{}, Internal("db error", err)
	}

	return u.loadCart(ctx, in.UserID)
}

// RemoveItem は明細を削除。無くてもエラーにしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID string) (model.Cart, error) {
	userID, err := requireID("user_id", userID)
	if err != nil {
		return model.Cart{}, err
	}
	productID, err = requireID("product_id", productID)
	if err != nil {
		return model.Cart{}, err
	}

	if err := u.cartItemRepo.Delete(ctx, userID, productID); err != nil {
		return model.Cart{}, Internal("db error", err)
	}
	return u.loadCart(ctx, userID)
}

// ClearCart は全明細を削除し、常に空のカートを返す。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) (model.Cart, error) {
	userID, err := requireID("user_id", userID)
	if err != nil {
		return model.Cart{}, err
	}

	if err := u.cartItemRepo.DeleteByUserID(ctx, userID); err != nil {
		return model.Cart{}, Internal("db error", err)
	}
	return model.NewCart(userID, nil), nil
}

func (u *CartUsecase) loadCart(ctx context.Context, userID string) (model.Cart, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return model.Cart{}, Internal("db error", err)
	}
	return model.NewCart(userID, items), nil
}
