package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newCancellationRepo(t *testing.T) (*CancellationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewCancellationRepo(&dbpg.DB{Master: db})
	// Без задержек между попытками в тестах
	repo.strategy = retry.Strategy{Attempts: 1}
	return repo, mock
}

func pendingRequest(bookingID string) *domain.CancellationRequest {
	return &domain.CancellationRequest{
		ID:        "c1",
		UserID:    "u1",
		BookingID: bookingID,
		Reason:    "schedule conflict",
		Status:    domain.CancellationStatusPending,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func bookingRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"ticket_code", "total_amount_cents", "slots", "status", "exhibition_id", "title"}).
		AddRow("TCK-1001", int64(4500), 2, status, "e1", "Impressionists in Spring")
}

func TestCancellationRepository_Create_Success(t *testing.T) {
	repo, mock := newCancellationRepo(t)
	req := pendingRequest("b1")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("active"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("b1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO cancellation_requests").
		WithArgs("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
			"schedule conflict", int64(4500), "pending", req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", "cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE exhibitions").
		WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "TCK-1001", req.TicketCode)
	assert.Equal(t, "Impressionists in Spring", req.ExhibitionTitle)
	assert.Equal(t, int64(4500), req.RefundAmountCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_BookingNotFound(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("missing", "u1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingRequest("missing"))

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_ForeignOwnerLooksLikeNotFound(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	// Чужое бронирование не попадает в выборку, ответ тот же, что и для
	// несуществующего id
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "intruder").
		WillReturnRows(sqlmock.NewRows([]string{"ticket_code", "total_amount_cents", "slots", "status", "exhibition_id", "title"}))
	mock.ExpectRollback()

	req := pendingRequest("b1")
	req.UserID = "intruder"
	err := repo.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_AlreadyCancelled(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("cancelled"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingRequest("b1"))

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_DuplicateRequest(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("active"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("b1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingRequest("b1"))

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_DuplicateOnUniqueIndex(t *testing.T) {
	repo, mock := newCancellationRepo(t)
	req := pendingRequest("b1")

	// Конкурирующий запрос успел вставиться между проверкой и INSERT,
	// частичный уникальный индекс закрывает гонку
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("active"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("b1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO cancellation_requests").
		WithArgs("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
			"schedule conflict", int64(4500), "pending", req.CreatedAt).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_RestoreFailureRollsBackEverything(t *testing.T) {
	repo, mock := newCancellationRepo(t)
	req := pendingRequest("b1")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("active"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("b1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO cancellation_requests").
		WithArgs("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
			"schedule conflict", int64(4500), "pending", req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", "cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE exhibitions").
		WithArgs("e1", 2).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), req)

	require.Error(t, err)
	// Коммита не было: вставка и смена статуса не видны снаружи
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Create_CapacityGuard(t *testing.T) {
	repo, mock := newCancellationRepo(t)
	req := pendingRequest("b1")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT b.ticket_code").
		WithArgs("b1", "u1").
		WillReturnRows(bookingRows("active"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("b1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO cancellation_requests").
		WithArgs("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
			"schedule conflict", int64(4500), "pending", req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", "cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE exhibitions").
		WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Decide_Success(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cancellation_requests").
		WithArgs("c1", "approved", "a1", "refund issued", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Decide(context.Background(), domain.DecideCancellationInput{
		RequestID:  "c1",
		Decision:   domain.CancellationStatusApproved,
		AdminID:    "a1",
		AdminNotes: "refund issued",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Decide_NotFound(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cancellation_requests").
		WithArgs("missing", "approved", "a1", "", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM cancellation_requests").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Decide(context.Background(), domain.DecideCancellationInput{
		RequestID: "missing",
		Decision:  domain.CancellationStatusApproved,
		AdminID:   "a1",
	})

	assert.ErrorIs(t, err, domain.ErrCancellationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_Decide_AlreadyDecided(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	// Второе конкурирующее решение не перезаписывает первое
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cancellation_requests").
		WithArgs("c1", "rejected", "a2", "second opinion", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM cancellation_requests").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("approved"))
	mock.ExpectRollback()

	err := repo.Decide(context.Background(), domain.DecideCancellationInput{
		RequestID:  "c1",
		Decision:   domain.CancellationStatusRejected,
		AdminID:    "a2",
		AdminNotes: "second opinion",
	})

	assert.ErrorIs(t, err, domain.ErrCancellationNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_ListAll_Success(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "booking_id", "ticket_code", "exhibition_title",
		"reason", "refund_amount_cents", "status", "processed_by", "processed_at",
		"admin_notes", "created_at",
		"name", "email",
		"booking_date", "slots",
		"location", "start_date", "end_date",
	}).
		AddRow("c2", "u2", "b2", "TCK-1002", "Modern Sculpture",
			"illness", int64(9000), "pending", nil, nil,
			nil, now,
			"bob", "bob@example.com",
			now.Add(-48*time.Hour), 3,
			"East Wing", now.Add(24*time.Hour), now.Add(96*time.Hour)).
		AddRow("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
			"schedule conflict", int64(4500), "approved", "a1", now.Add(-time.Hour),
			"refund issued", now.Add(-2*time.Hour),
			"alice", "alice@example.com",
			now.Add(-72*time.Hour), 2,
			"Main Hall", now.Add(48*time.Hour), now.Add(120*time.Hour))
	mock.ExpectQuery("FROM cancellation_requests cr").WillReturnRows(rows)

	result, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "c2", result[0].Request.ID)
	assert.Nil(t, result[0].Request.ProcessedBy)
	assert.Equal(t, "bob", result[0].UserName)
	assert.Equal(t, domain.CancellationStatusApproved, result[1].Request.Status)
	require.NotNil(t, result[1].Request.ProcessedBy)
	assert.Equal(t, "a1", *result[1].Request.ProcessedBy)
	require.NotNil(t, result[1].Request.AdminNotes)
	assert.Equal(t, "refund issued", *result[1].Request.AdminNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancellationRepository_ListAll_MissingTable(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectQuery("FROM cancellation_requests cr").
		WillReturnError(&pq.Error{Code: "42P01"})

	result, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCancellationRepository_ListByUser_Success(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "booking_id", "ticket_code", "exhibition_title",
		"reason", "refund_amount_cents", "status", "processed_by", "processed_at",
		"admin_notes", "created_at",
		"booking_date", "slots",
	}).AddRow("c1", "u1", "b1", "TCK-1001", "Impressionists in Spring",
		"schedule conflict", int64(4500), "pending", nil, nil,
		nil, now,
		now.Add(-72*time.Hour), 2)
	mock.ExpectQuery("FROM cancellation_requests cr").
		WithArgs("u1").
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].Slots)
	assert.Equal(t, domain.CancellationStatusPending, result[0].Request.Status)
}

func TestCancellationRepository_ListByUser_MissingTable(t *testing.T) {
	repo, mock := newCancellationRepo(t)

	mock.ExpectQuery("FROM cancellation_requests cr").
		WithArgs("u1").
		WillReturnError(&pq.Error{Code: "42P01"})

	result, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
