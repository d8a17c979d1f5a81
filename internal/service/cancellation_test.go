package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/Alianda23/art-exhibit-hub-01/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestCancellationService_Request_Success(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req *domain.CancellationRequest) error {
			// Репозиторий заполняет снапшот из бронирования
			req.TicketCode = "TCK-1001"
			req.ExhibitionTitle = "Impressionists in Spring"
			req.RefundAmountCents = 4500
			return nil
		})

	created, err := svc.Request(context.Background(), "u1", "b1", "schedule conflict")

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "b1", created.BookingID)
	assert.Equal(t, "schedule conflict", created.Reason)
	assert.Equal(t, domain.CancellationStatusPending, created.Status)
	assert.Equal(t, "TCK-1001", created.TicketCode)
	assert.Equal(t, int64(4500), created.RefundAmountCents)
	assert.Nil(t, created.ProcessedBy)
	assert.Nil(t, created.ProcessedAt)
}

func TestCancellationService_Request_EmptyReason(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	_, err := svc.Request(context.Background(), "u1", "b1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCancellationService_Request_BookingNotFound(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBookingNotFound)

	_, err := svc.Request(context.Background(), "u1", "missing", "changed my mind")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCancellationService_Request_AlreadyCancelled(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyCancelled)

	_, err := svc.Request(context.Background(), "u1", "b1", "changed my mind")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestCancellationService_Request_DuplicateAfterSuccess(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateRequest).Once()

	_, err := svc.Request(context.Background(), "u1", "b1", "schedule conflict")
	require.NoError(t, err)

	_, err = svc.Request(context.Background(), "u1", "b1", "schedule conflict")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestCancellationService_Decide_Approved(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Decide(mock.Anything, domain.DecideCancellationInput{
		RequestID:  "c1",
		Decision:   domain.CancellationStatusApproved,
		AdminID:    "a1",
		AdminNotes: "refund issued",
	}).Return(nil)

	status, err := svc.Decide(context.Background(), "c1", "approved", "a1", "refund issued")

	require.NoError(t, err)
	assert.Equal(t, domain.CancellationStatusApproved, status)
}

func TestCancellationService_Decide_Rejected(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Decide(mock.Anything, domain.DecideCancellationInput{
		RequestID:  "c1",
		Decision:   domain.CancellationStatusRejected,
		AdminID:    "a1",
		AdminNotes: "ticket already used",
	}).Return(nil)

	status, err := svc.Decide(context.Background(), "c1", "rejected", "a1", "ticket already used")

	require.NoError(t, err)
	assert.Equal(t, domain.CancellationStatusRejected, status)
}

func TestCancellationService_Decide_InvalidStatus(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	for _, decision := range []string{"", "pending", "done", "APPROVED"} {
		_, err := svc.Decide(context.Background(), "c1", decision, "a1", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCancellationService_Decide_NotFound(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Decide(mock.Anything, mock.Anything).Return(domain.ErrCancellationNotFound)

	_, err := svc.Decide(context.Background(), "missing", "approved", "a1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationNotFound)
}

func TestCancellationService_Decide_AlreadyDecided(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().Decide(mock.Anything, mock.Anything).Return(domain.ErrCancellationNotPending)

	_, err := svc.Decide(context.Background(), "c1", "rejected", "a2", "second opinion")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationNotPending)
}

func TestCancellationService_ListAll_Success(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	details := []*domain.AdminCancellationDetail{
		{
			CancellationDetail: domain.CancellationDetail{
				Request: domain.CancellationRequest{ID: "c1", Status: domain.CancellationStatusPending},
				Slots:   2,
			},
			UserName:  "alice",
			UserEmail: "alice@example.com",
		},
	}
	repo.EXPECT().ListAll(mock.Anything).Return(details, nil)

	result, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "alice", result[0].UserName)
}

func TestCancellationService_ListByUser_Success(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	now := time.Now().UTC()
	details := []*domain.CancellationDetail{
		{
			Request:     domain.CancellationRequest{ID: "c1", UserID: "u1", CreatedAt: now},
			BookingDate: now.Add(-24 * time.Hour),
			Slots:       1,
		},
	}
	repo.EXPECT().ListByUser(mock.Anything, "u1").Return(details, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCancellationService_ListByUser_RepoError(t *testing.T) {
	repo := mocks.NewMockCancellationRepo(t)
	svc := NewCancellationService(repo, newTestLogger(t))

	repo.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, errors.New("db error"))

	_, err := svc.ListByUser(context.Background(), "u1")

	require.Error(t, err)
}
