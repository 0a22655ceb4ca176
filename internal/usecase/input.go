package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultQuantity = 1
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// 入力は外から緩い形で来る。normalize で未指定・不正値を既定値に寄せてから処理する。

type AddItemInput struct {
	UserID    string
	ProductID string
	Quantity  int64
}

func (in AddItemInput) normalize() (AddItemInput, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.UserID == "" {
		return in, InvalidArgument("user_id is required")
	}
	if in.ProductID == "" {
		return in, InvalidArgument("product_id is required")
	}
	if in.Quantity <= 0 {
		in.Quantity = DefaultQuantity
	}
	return in, nil
}

type OrderItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

type CreateOrderInput struct {
	UserID string
	Items  []OrderItemInput
	Total  decimal.Decimal
}

func (in CreateOrderInput) normalize() (CreateOrderInput, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return in, InvalidArgument("user_id is required")
	}
	return in, nil
}

type PageInput struct {
	Page     int
	PageSize int
}

func (p PageInput) normalize() PageInput {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

type ListOrdersInput struct {
	UserID string
	PageInput
}

func requireID(name, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", InvalidArgument(name + " is required")
	}
	return v, nil
}
