package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
)

// 注文の業務ロジック。書き込みは TransactionManager 経由
type OrderUsecase struct {
	tx     repo.TransactionManager
	events OrderEventPublisher
	idGen  IDGenerator
	clock  Clock
	log    *slog.Logger
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	events OrderEventPublisher,
	idGen IDGenerator,
	clock Clock,
	log *slog.Logger,
) *OrderUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &OrderUsecase{tx: tx, events: events, idGen: idGen, clock: clock, log: log}
}

// 注文一覧（total_count はページング前の件数）
type ListOrdersOutput struct {
	Orders     []model.Order `json:"orders"`
	TotalCount int64         `json:"total_count"`
}

// CreateOrder は注文ヘッダと明細を1トランザクションで保存する。
// 明細は渡された内容をそのまま、順番も保ったまま保存する。
// total は呼び出し側の値を信用し、再計算しない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		ID:        u.idGen.NewID(),
		UserID:    in.UserID,
		Total:     in.Total,
		Status:    model.OrderStatusPending,
		CreatedAt: u.clock.Now().UTC().Truncate(time.Microsecond),
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	sum := decimal.Zero
	for i, it := range in.Items {
		oi := model.OrderItem{
			OrderID:     order.ID,
			Position:    i,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
		sum = sum.Add(oi.LineTotal())
		items = append(items, oi)
	}
	if !sum.Equal(in.Total) {
		u.log.WarnContext(ctx, "order total differs from item sum",
			slog.String("order_id", order.ID),
			slog.String("total", in.Total.String()),
			slog.String("item_sum", sum.String()),
		)
	}

	//注文処理はトランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}
		return r.OrderItems().CreateBulk(ctx, order.ID, items)
	})
	if err != nil {
		return model.Order{}, Internal("db error", err)
	}

	order.Items = items

	// コミット後の通知。失敗しても注文は確定済み
	if u.events != nil {
		if err := u.events.PublishOrderCreated(ctx, order); err != nil {
			u.log.WarnContext(ctx, "publish order.created failed",
				slog.String("order_id", order.ID),
				slog.Any("err", err),
			)
		}
	}

	return order, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	orderID, err := requireID("id", orderID)
	if err != nil {
		return model.Order{}, err
	}

	var out model.Order

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NotFound("order not found", err)
		}
		if err != nil {
			return Internal("db error", err)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return Internal("db error", err)
		}

		out = withItems(o, items)
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// ListOrdersByUser は created_at の新しい順。各注文の明細も詰める（N+1）。
func (u *OrderUsecase) ListOrdersByUser(ctx context.Context, in ListOrdersInput) (ListOrdersOutput, error) {
	userID, err := requireID("user_id", in.UserID)
	if err != nil {
		return ListOrdersOutput{}, err
	}
	page := in.PageInput.normalize()

	out := ListOrdersOutput{Orders: []model.Order{}}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByUserID(ctx, userID, page.Page, page.PageSize)
		if err != nil {
			return Internal("db error", err)
		}

		out.TotalCount = total
		out.Orders = make([]model.Order, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return Internal("db error", err)
			}
			out.Orders = append(out.Orders, withItems(o, items))
		}
		return nil
	})

	if err != nil {
		return ListOrdersOutput{}, err
	}
	return out, nil
}

func withItems(o model.Order, items []model.OrderItem) model.Order {
	if items == nil {
		items = []model.OrderItem{}
	}
	o.Items = items
	return o
}
