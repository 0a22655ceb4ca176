package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
	"shopcore/internal/usecase"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, page int, limit int) ([]model.Product, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func TestProductUsecase_ListProducts_NormalizesPaging(t *testing.T) {
	cases := []struct {
		name             string
		in               usecase.PageInput
		wantPage, wantPS int
	}{
		{"defaults", usecase.PageInput{}, 1, 10},
		{"negative page", usecase.PageInput{Page: -2, PageSize: 5}, 1, 5},
		{"too large", usecase.PageInput{Page: 3, PageSize: 101}, 3, 10},
		{"max", usecase.PageInput{Page: 1, PageSize: 100}, 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := new(ProductRepoMock)
			uc := usecase.NewProductUsecase(r, &seqIDGen{})
			r.On("List", mock.Anything, tc.wantPage, tc.wantPS).Return([]model.Product{{ID: "p1"}}, int64(1), nil)

			out, err := uc.ListProducts(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, int64(1), out.Total)
			assert.Len(t, out.Products, 1)
			r.AssertExpectations(t)
		})
	}
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r, &seqIDGen{})
	r.On("FindByID", mock.Anything, "p-x").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), "p-x")
	assertKind(t, err, usecase.KindNotFound)
}

func TestProductUsecase_GetProduct_DBError(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r, &seqIDGen{})
	r.On("FindByID", mock.Anything, "p-x").Return(model.Product{}, errors.New("boom"))

	_, err := uc.GetProduct(context.Background(), "p-x")
	assertKind(t, err, usecase.KindInternal)
}

func TestProductUsecase_CreateProduct(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r, &seqIDGen{})
	r.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "ord-001" && p.Name == "Coffee" && p.Price.Equal(dec("19.99")) && p.Stock == 7
	})).Return(model.Product{ID: "ord-001", Name: "Coffee", Price: dec("19.99"), Stock: 7}, nil)

	p, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "  Coffee ", Price: dec("19.99"), Stock: 7})
	require.NoError(t, err)
	assert.Equal(t, "ord-001", p.ID)
	r.AssertExpectations(t)
}

func TestProductUsecase_CreateProduct_Validation(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), &seqIDGen{})
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{Name: " "})
	assertKind(t, err, usecase.KindInvalidArgument)
	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "x", Price: dec("-1")})
	assertKind(t, err, usecase.KindInvalidArgument)
	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "x", Stock: -1})
	assertKind(t, err, usecase.KindInvalidArgument)
}
