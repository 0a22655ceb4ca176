package model

import "github.com/shopspring/decimal"

// 注文明細。カート明細の非正規化コピー。
// Position は挿入順で、表示順そのもの。
type OrderItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     string          `gorm:"type:varchar(64);not null;index" json:"-"`
	Order       *Order          `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Position    int             `gorm:"not null" json:"-"`
	ProductID   string          `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
