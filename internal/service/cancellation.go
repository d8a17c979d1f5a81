package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/Alianda23/art-exhibit-hub-01/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CancellationService struct {
	repo   ports.CancellationRepo
	logger logger.Logger
}

func NewCancellationService(repo ports.CancellationRepo, logger logger.Logger) *CancellationService {
	return &CancellationService{
		repo:   repo,
		logger: logger,
	}
}

// Request creates a cancellation request for the user's booking. The
// repository performs eligibility validation, the booking flip and the
// slot restore atomically; on success the returned request carries the
// snapshot of the cancelled ticket.
func (s *CancellationService) Request(ctx context.Context, userID, bookingID, reason string) (*domain.CancellationRequest, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	req := &domain.CancellationRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		BookingID: bookingID,
		Reason:    reason,
		Status:    domain.CancellationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create cancellation request: %w", err)
	}

	s.logger.Info("cancellation request created",
		logger.String("cancellation_id", req.ID),
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
		logger.Any("refund_amount_cents", req.RefundAmountCents),
	)

	return req, nil
}

// Decide moves a pending request to its terminal state. Capacity and the
// booking itself were already settled at request time, so this only
// annotates the request with the admin's decision.
func (s *CancellationService) Decide(ctx context.Context, requestID, decision, adminID, notes string) (domain.CancellationStatus, error) {
	status, err := domain.ParseDecision(decision)
	if err != nil {
		return "", fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}

	input := domain.DecideCancellationInput{
		RequestID:  requestID,
		Decision:   status,
		AdminID:    adminID,
		AdminNotes: notes,
	}
	if err = s.repo.Decide(ctx, input); err != nil {
		return "", fmt.Errorf("decide cancellation: %w", err)
	}

	s.logger.Info("cancellation request decided",
		logger.String("cancellation_id", requestID),
		logger.String("decision", string(status)),
		logger.String("admin_id", adminID),
	)

	return status, nil
}

func (s *CancellationService) ListAll(ctx context.Context) ([]*domain.AdminCancellationDetail, error) {
	return s.repo.ListAll(ctx)
}

func (s *CancellationService) ListByUser(ctx context.Context, userID string) ([]*domain.CancellationDetail, error) {
	return s.repo.ListByUser(ctx, userID)
}
