package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shopcore/internal/domain/model"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文確定（コミット後）の通知先
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order model.Order) error
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
