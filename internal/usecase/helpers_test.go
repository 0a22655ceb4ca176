package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	repo "shopcore/internal/repository"
	"shopcore/internal/usecase"
)

// =====================
// Fakes
// =====================

// fakeCatalog はカタログ参照のテスト用実装
type fakeCatalog struct {
	mu       sync.Mutex
	products map[string]repo.ProductSnapshot
	err      error
	calls    int
}

func newFakeCatalog(ps ...repo.ProductSnapshot) *fakeCatalog {
	f := &fakeCatalog{products: map[string]repo.ProductSnapshot{}}
	for _, p := range ps {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCatalog) set(p repo.ProductSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
}

func (f *fakeCatalog) GetProduct(ctx context.Context, productID string) (repo.ProductSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return repo.ProductSnapshot{}, f.err
	}
	p, ok := f.products[productID]
	if !ok {
		return repo.ProductSnapshot{}, repo.ErrNotFound
	}
	return p, nil
}

type seqIDGen struct{ n atomic.Int64 }

func (g *seqIDGen) NewID() string { return fmt.Sprintf("ord-%03d", g.n.Add(1)) }

// stepClock は呼ばれるたびに1秒進む
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertKind(t *testing.T, err error, want usecase.ErrorKind) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, want, usecase.KindOf(err), "err=%v", err)
	}
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s", want, got)
}
