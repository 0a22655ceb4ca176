package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
)

// メモリ上の注文ストア。TransactionManager も兼ねる。
// トランザクション中はロックを持ち、書き込みは fn が nil を返したときだけ反映する。
type OrderMemoryStore struct {
	mu     sync.Mutex
	orders map[string]model.Order
	items  map[string][]model.OrderItem
	nextID int64
}

func NewOrderMemoryStore() *OrderMemoryStore {
	return &OrderMemoryStore{
		orders: make(map[string]model.Order),
		items:  make(map[string][]model.OrderItem),
	}
}

func (s *OrderMemoryStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memOrderTx{
		store:  s,
		orders: make(map[string]model.Order),
		items:  make(map[string][]model.OrderItem),
	}
	if err := fn(tx); err != nil {
		return err
	}

	for id, o := range tx.orders {
		s.orders[id] = o
	}
	for id, its := range tx.items {
		for _, it := range its {
			s.nextID++
			it.ID = s.nextID
			s.items[id] = append(s.items[id], it)
		}
	}
	return nil
}

type memOrderTx struct {
	store  *OrderMemoryStore
	orders map[string]model.Order
	items  map[string][]model.OrderItem
}

func (t *memOrderTx) Orders() repo.OrderRepository         { return memOrders{t} }
func (t *memOrderTx) OrderItems() repo.OrderItemRepository { return memOrderItems{t} }

func (t *memOrderTx) lookup(orderID string) (model.Order, bool) {
	if o, ok := t.orders[orderID]; ok {
		return o, true
	}
	o, ok := t.store.orders[orderID]
	return o, ok
}

type memOrders struct{ tx *memOrderTx }

func (m memOrders) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	o, ok := m.tx.lookup(orderID)
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (m memOrders) ListByUserID(ctx context.Context, userID string, page int, limit int) ([]model.Order, int64, error) {
	var all []model.Order
	for _, src := range []map[string]model.Order{m.tx.store.orders, m.tx.orders} {
		for _, o := range src {
			if o.UserID == userID {
				all = append(all, o)
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []model.Order{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m memOrders) Create(ctx context.Context, order model.Order) error {
	if _, ok := m.tx.lookup(order.ID); ok {
		return fmt.Errorf("insert order: duplicate id %s", order.ID)
	}
	order.Items = nil
	m.tx.orders[order.ID] = order
	return nil
}

type memOrderItems struct{ tx *memOrderTx }

func (m memOrderItems) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := m.tx.lookup(orderID); !ok {
		return fmt.Errorf("insert order items: order %s has no header", orderID)
	}
	for i, it := range items {
		it.OrderID = orderID
		it.Position = i
		it.Order = nil
		m.tx.items[orderID] = append(m.tx.items[orderID], it)
	}
	return nil
}

func (m memOrderItems) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	committed := m.tx.store.items[orderID]
	staged := m.tx.items[orderID]
	out := make([]model.OrderItem, 0, len(committed)+len(staged))
	out = append(out, committed...)
	out = append(out, staged...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}
