package ports

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
)

type CancellationRepo interface {
	Create(ctx context.Context, req *domain.CancellationRequest) error
	Decide(ctx context.Context, input domain.DecideCancellationInput) error
	ListAll(ctx context.Context) ([]*domain.AdminCancellationDetail, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CancellationDetail, error)
}
