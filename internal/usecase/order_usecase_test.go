package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopcore/internal/domain/model"
	infraRepo "shopcore/internal/infra/repository"
	repo "shopcore/internal/repository"
	"shopcore/internal/usecase"
)

// =====================
// Mocks
// =====================

// TxManagerMock は fn を呼ばずに err を返す（コミット失敗の再現）
type TxManagerMock struct{ mock.Mock }

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishOrderCreated(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newOrderUC(t *testing.T, pub usecase.OrderEventPublisher) *usecase.OrderUsecase {
	t.Helper()
	return usecase.NewOrderUsecase(infraRepo.NewOrderMemoryStore(), pub, &seqIDGen{}, &stepClock{now: t0}, nil)
}

func sampleOrderInput(userID string) usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		UserID: userID,
		Items: []usecase.OrderItemInput{
			{ProductID: "p-mug", ProductName: "Mug", Quantity: 2, UnitPrice: dec("5.01")},
			{ProductID: "p-coffee", ProductName: "Coffee", Quantity: 1, UnitPrice: dec("19.99")},
		},
		Total: dec("30.01"),
	}
}

// =====================
// CreateOrder / GetOrder
// =====================

func TestOrderUsecase_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	uc := newOrderUC(t, nil)

	created, err := uc.CreateOrder(ctx, sampleOrderInput("u1"))
	require.NoError(t, err)
	assert.Equal(t, "ord-001", created.ID)
	assert.Equal(t, model.OrderStatusPending, created.Status)
	assert.Equal(t, t0.Add(time.Second), created.CreatedAt)

	got, err := uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assertDecEqual(t, "30.01", got.Total)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	// 明細は渡した順のまま
	require.Len(t, got.Items, 2)
	assert.Equal(t, "p-mug", got.Items[0].ProductID)
	assert.Equal(t, int64(2), got.Items[0].Quantity)
	assertDecEqual(t, "5.01", got.Items[0].UnitPrice)
	assert.Equal(t, "p-coffee", got.Items[1].ProductID)
	assert.Equal(t, "Coffee", got.Items[1].ProductName)
}

func TestOrderUsecase_CreateOrder_TrustsCallerTotal(t *testing.T) {
	ctx := context.Background()
	uc := newOrderUC(t, nil)

	in := sampleOrderInput("u1")
	in.Total = dec("1.00")

	created, err := uc.CreateOrder(ctx, in)
	require.NoError(t, err)

	got, err := uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assertDecEqual(t, "1.00", got.Total)
}

func TestOrderUsecase_CreateOrder_EmptyItems(t *testing.T) {
	ctx := context.Background()
	uc := newOrderUC(t, nil)

	created, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{UserID: "u1"})
	require.NoError(t, err)

	got, err := uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.True(t, got.Total.IsZero())
}

func TestOrderUsecase_CreateOrder_RequiresUser(t *testing.T) {
	uc := newOrderUC(t, nil)

	_, err := uc.CreateOrder(context.Background(), sampleOrderInput(""))
	assertKind(t, err, usecase.KindInvalidArgument)
}

func TestOrderUsecase_CreateOrder_TxFailureIsInternal(t *testing.T) {
	tx := new(TxManagerMock)
	pub := new(PublisherMock)
	uc := usecase.NewOrderUsecase(tx, pub, &seqIDGen{}, &stepClock{now: t0}, nil)

	tx.On("WithinTx", mock.Anything).Return(errors.New("commit failed"))

	_, err := uc.CreateOrder(context.Background(), sampleOrderInput("u1"))
	assertKind(t, err, usecase.KindInternal)
	tx.AssertExpectations(t)
	pub.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_PublishesAfterCommit(t *testing.T) {
	pub := new(PublisherMock)
	uc := newOrderUC(t, pub)

	pub.On("PublishOrderCreated", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ID == "ord-001" && o.UserID == "u1" && len(o.Items) == 2
	})).Return(nil).Once()

	_, err := uc.CreateOrder(context.Background(), sampleOrderInput("u1"))
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_PublishFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	pub := new(PublisherMock)
	uc := newOrderUC(t, pub)

	pub.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	created, err := uc.CreateOrder(ctx, sampleOrderInput("u1"))
	require.NoError(t, err)

	_, err = uc.GetOrder(ctx, created.ID)
	assert.NoError(t, err)
}

func TestOrderUsecase_GetOrder_NotFound(t *testing.T) {
	uc := newOrderUC(t, nil)

	_, err := uc.GetOrder(context.Background(), "ord-missing")
	assertKind(t, err, usecase.KindNotFound)

	_, err = uc.GetOrder(context.Background(), "")
	assertKind(t, err, usecase.KindInvalidArgument)
}

// =====================
// ListOrdersByUser
// =====================

func TestOrderUsecase_ListOrdersByUser_Pagination(t *testing.T) {
	ctx := context.Background()
	uc := newOrderUC(t, nil)

	var ids []string
	for i := 0; i < 3; i++ {
		o, err := uc.CreateOrder(ctx, sampleOrderInput("u1"))
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	_, err := uc.CreateOrder(ctx, sampleOrderInput("u2"))
	require.NoError(t, err)

	first, err := uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{UserID: "u1", PageInput: usecase.PageInput{Page: 1, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.TotalCount)
	require.Len(t, first.Orders, 2)
	// 新しい順
	assert.Equal(t, ids[2], first.Orders[0].ID)
	assert.Equal(t, ids[1], first.Orders[1].ID)
	assert.Len(t, first.Orders[0].Items, 2)

	second, err := uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{UserID: "u1", PageInput: usecase.PageInput{Page: 2, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), second.TotalCount)
	require.Len(t, second.Orders, 1)
	assert.Equal(t, ids[0], second.Orders[0].ID)

	past, err := uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{UserID: "u1", PageInput: usecase.PageInput{Page: 9, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), past.TotalCount)
	assert.NotNil(t, past.Orders)
	assert.Empty(t, past.Orders)
}

func TestOrderUsecase_ListOrdersByUser_Defaults(t *testing.T) {
	ctx := context.Background()
	uc := newOrderUC(t, nil)

	for i := 0; i < 12; i++ {
		_, err := uc.CreateOrder(ctx, sampleOrderInput("u1"))
		require.NoError(t, err)
	}

	out, err := uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.TotalCount)
	assert.Len(t, out.Orders, usecase.DefaultPageSize)

	out, err = uc.ListOrdersByUser(ctx, usecase.ListOrdersInput{UserID: "u1", PageInput: usecase.PageInput{Page: -1, PageSize: 1000}})
	require.NoError(t, err)
	assert.Len(t, out.Orders, 12)
}

func TestOrderUsecase_ListOrdersByUser_UnknownUser(t *testing.T) {
	uc := newOrderUC(t, nil)

	out, err := uc.ListOrdersByUser(context.Background(), usecase.ListOrdersInput{UserID: "u-none"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalCount)
	assert.NotNil(t, out.Orders)
	assert.Empty(t, out.Orders)
}
