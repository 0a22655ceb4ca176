package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// 1明細の数量の上限。RPCの quantity(int32) に収まる値で頭打ちにする。
const MaxQuantity int64 = math.MaxInt32

// カートの明細。(user_id, product_id) で一意。
// product_name / unit_price は追加時点のカタログ値のスナップショット。
type CartItem struct {
	UserID      string          `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	ProductID   string          `gorm:"primaryKey;type:varchar(64)" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 数量×単価
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
