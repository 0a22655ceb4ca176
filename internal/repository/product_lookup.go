package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// カート追加時にカタログからコピーする値
type ProductSnapshot struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// カタログサービスで商品を引く。存在しないIDは ErrNotFound を返す
type ProductLookup interface {
	GetProduct(ctx context.Context, productID string) (ProductSnapshot, error)
}
