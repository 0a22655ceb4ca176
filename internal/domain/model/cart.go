package model

import "github.com/shopspring/decimal"

// カートは保存しない。読むたびに cart_items から組み立てる。
type Cart struct {
	UserID string          `json:"user_id"`
	Items  []CartItem      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// 明細から合計を計算し直してカートを作る
func NewCart(userID string, items []CartItem) Cart {
	if items == nil {
		items = []CartItem{}
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return Cart{UserID: userID, Items: items, Total: total}
}
