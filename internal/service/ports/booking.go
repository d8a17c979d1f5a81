package ports

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
)

type BookingRepo interface {
	GetForUser(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
