package service

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/Alianda23/art-exhibit-hub-01/internal/service/ports"
)

type BookingService struct {
	repo ports.BookingRepo
}

func NewBookingService(repo ports.BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) GetForUser(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	return s.repo.GetForUser(ctx, bookingID, userID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}
