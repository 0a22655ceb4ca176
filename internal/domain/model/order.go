package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文ステータス。今は PENDING のみ
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending:
		return true
	}
	return false
}

// 注文ヘッダ。作成後は更新しない。
type Order struct {
	ID        string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID    string          `gorm:"type:varchar(64);not null;index:idx_orders_user_created,priority:1" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time       `gorm:"not null;index:idx_orders_user_created,priority:2" json:"created_at"`

	Items []OrderItem `gorm:"-" json:"items"`
}
