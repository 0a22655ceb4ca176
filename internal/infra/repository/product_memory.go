package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"shopcore/internal/domain/model"
	repo "shopcore/internal/repository"
)

type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{products: make(map[string]model.Product)}
}

func (r *ProductMemoryRepository) List(ctx context.Context, page int, limit int) ([]model.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []model.Product{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; ok {
		return model.Product{}, fmt.Errorf("insert product: duplicate id %s", p.ID)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = p
	return p, nil
}
