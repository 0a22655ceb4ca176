package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
)

// カタログサービスの業務ロジック
type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, idGen: idGen}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int32
}

type ProductListOutput struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
}

// ListProducts: page < 1 は 1、page_size が 1..100 の外なら 10。
func (u *ProductUsecase) ListProducts(ctx context.Context, in PageInput) (ProductListOutput, error) {
	if in.Page < 1 {
		in.Page = DefaultPage
	}
	if in.PageSize < 1 || in.PageSize > MaxPageSize {
		in.PageSize = DefaultPageSize
	}

	items, total, err := u.productRepo.List(ctx, in.Page, in.PageSize)
	if err != nil {
		return ProductListOutput{}, Internal("db error", err)
	}
	return ProductListOutput{Products: items, Total: total}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	productID, err := requireID("id", productID)
	if err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NotFound("product not found", err)
	}
	if err != nil {
		return model.Product{}, Internal("db error", err)
	}
	return p, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, InvalidArgument("name is required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, InvalidArgument("price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, InvalidArgument("stock must be >= 0")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ID:          u.idGen.NewID(),
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err != nil {
		return model.Product{}, Internal("db error", err)
	}
	return p, nil
}
