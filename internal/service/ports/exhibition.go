package ports

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
)

type ExhibitionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Exhibition, error)
	List(ctx context.Context) ([]*domain.Exhibition, error)
}
