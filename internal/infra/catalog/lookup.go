package catalog

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	repo "shopcore/internal/repository"
	"shopcore/internal/rpc"
)

// Lookup resolves products against the catalog service over gRPC.
// Every call is bounded by timeout.
type Lookup struct {
	client  *rpc.CatalogClient
	timeout time.Duration
}

func NewLookup(cc grpc.ClientConnInterface, timeout time.Duration) *Lookup {
	return &Lookup{client: rpc.NewCatalogClient(cc), timeout: timeout}
}

func (l *Lookup) GetProduct(ctx context.Context, productID string) (repo.ProductSnapshot, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	p, err := l.client.GetProduct(ctx, &rpc.GetProductRequest{ID: productID})
	if status.Code(err) == codes.NotFound {
		return repo.ProductSnapshot{}, fmt.Errorf("catalog %s: %w", productID, repo.ErrNotFound)
	}
	if err != nil {
		return repo.ProductSnapshot{}, fmt.Errorf("catalog %s: %w", productID, err)
	}
	return repo.ProductSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}, nil
}
