package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CancellationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCancellationRepo(db *dbpg.DB) *CancellationRepository {
	return &CancellationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create runs the whole cancel-and-restore sequence as one transaction:
// eligibility checks, the pending request insert, the booking status flip
// and the slot restore either all commit or none of them do. The booking
// row is locked for the duration so two concurrent requests for the same
// booking serialize; the partial unique index on cancellation_requests
// backstops the duplicate check for anything that races past it.
//
// On success the snapshot fields (ticket code, exhibition title, refund
// amount) are filled in on req.
func (r *CancellationRepository) Create(ctx context.Context, req *domain.CancellationRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `SELECT b.ticket_code, b.total_amount_cents, b.slots, b.status, b.exhibition_id, e.title
					 FROM bookings b
					 JOIN exhibitions e ON e.id = b.exhibition_id
					 WHERE b.id = $1 AND b.user_id = $2
					 FOR UPDATE OF b`
	var (
		slots        int
		status       domain.BookingStatus
		exhibitionID string
	)
	err = tx.QueryRowContext(ctx, bookingQuery, req.BookingID, req.UserID).Scan(
		&req.TicketCode, &req.RefundAmountCents, &slots, &status, &exhibitionID, &req.ExhibitionTitle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking: %w", err)
	}

	if status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	var exists bool
	existingQuery := `SELECT EXISTS (
						SELECT 1 FROM cancellation_requests
						WHERE booking_id = $1 AND status = ANY($2)
					  )`
	if err = tx.QueryRowContext(
		ctx, existingQuery, req.BookingID,
		pq.Array(domain.ActiveCancellationStatuses),
	).Scan(&exists); err != nil {
		return fmt.Errorf("check existing request: %w", err)
	}
	if exists {
		return domain.ErrDuplicateRequest
	}

	insertQuery := `INSERT INTO cancellation_requests
					(id, user_id, booking_id, ticket_code, exhibition_title, reason, refund_amount_cents, status, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		req.ID, req.UserID, req.BookingID, req.TicketCode, req.ExhibitionTitle,
		req.Reason, req.RefundAmountCents, req.Status, req.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert cancellation request: %w", err)
	}

	cancelQuery := `UPDATE bookings
					SET status = $2, updated_at = now()
					WHERE id = $1 AND status <> $2`
	res, err := tx.ExecContext(ctx, cancelQuery, req.BookingID, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyCancelled
	}

	// Server-evaluated increment, capped at the exhibition's total capacity.
	restoreQuery := `UPDATE exhibitions
					 SET available_slots = available_slots + $2, updated_at = now()
					 WHERE id = $1 AND available_slots + $2 <= total_slots`
	res, err = tx.ExecContext(ctx, restoreQuery, exhibitionID, slots)
	if err != nil {
		return fmt.Errorf("restore slots: %w", err)
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("exhibition rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCapacityExceeded
	}

	return tx.Commit()
}

// Decide transitions a pending request to approved or rejected. The update
// is conditioned on the request still being pending, so a second decision
// never overwrites the first one. Bookings and exhibitions are not touched
// here: capacity was settled when the request was created.
func (r *CancellationRepository) Decide(ctx context.Context, input domain.DecideCancellationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE cancellation_requests
			  SET status = $2, processed_by = $3, processed_at = now(), admin_notes = $4
			  WHERE id = $1 AND status = $5`
	res, err := tx.ExecContext(
		ctx, query,
		input.RequestID, input.Decision, input.AdminID, input.AdminNotes,
		domain.CancellationStatusPending,
	)
	if err != nil {
		return fmt.Errorf("decide cancellation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancellation rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: запрос не найден или уже обработан
		var status domain.CancellationStatus
		checkQuery := `SELECT status FROM cancellation_requests WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, input.RequestID).Scan(&status); scanErr != nil {
			return domain.ErrCancellationNotFound
		}
		return domain.ErrCancellationNotPending
	}

	return tx.Commit()
}

// ListAll returns every cancellation request joined with user identity and
// exhibition context for the admin dashboard, newest first. A missing
// backing table (mid-rollout) yields an empty list rather than an error.
func (r *CancellationRepository) ListAll(ctx context.Context) ([]*domain.AdminCancellationDetail, error) {
	query := `SELECT cr.id, cr.user_id, cr.booking_id, cr.ticket_code, cr.exhibition_title,
					 cr.reason, cr.refund_amount_cents, cr.status, cr.processed_by, cr.processed_at,
					 cr.admin_notes, cr.created_at,
					 u.name, u.email,
					 b.booking_date, b.slots,
					 e.location, e.start_date, e.end_date
			  FROM cancellation_requests cr
			  JOIN users u ON u.id = cr.user_id
			  JOIN bookings b ON b.id = cr.booking_id
			  JOIN exhibitions e ON e.id = b.exhibition_id
			  ORDER BY cr.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		if isUndefinedTable(err) {
			return []*domain.AdminCancellationDetail{}, nil
		}
		return nil, fmt.Errorf("list cancellations: %w", err)
	}
	defer rows.Close()

	var res []*domain.AdminCancellationDetail
	for rows.Next() {
		var d domain.AdminCancellationDetail
		if err = scanRequest(rows, &d.Request,
			&d.UserName, &d.UserEmail,
			&d.BookingDate, &d.Slots,
			&d.Location, &d.StartDate, &d.EndDate,
		); err != nil {
			return nil, fmt.Errorf("scan cancellation: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

// ListByUser returns the caller's own cancellation requests, newest first.
func (r *CancellationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CancellationDetail, error) {
	query := `SELECT cr.id, cr.user_id, cr.booking_id, cr.ticket_code, cr.exhibition_title,
					 cr.reason, cr.refund_amount_cents, cr.status, cr.processed_by, cr.processed_at,
					 cr.admin_notes, cr.created_at,
					 b.booking_date, b.slots
			  FROM cancellation_requests cr
			  JOIN bookings b ON b.id = cr.booking_id
			  WHERE cr.user_id = $1
			  ORDER BY cr.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		if isUndefinedTable(err) {
			return []*domain.CancellationDetail{}, nil
		}
		return nil, fmt.Errorf("list user cancellations: %w", err)
	}
	defer rows.Close()

	var res []*domain.CancellationDetail
	for rows.Next() {
		var d domain.CancellationDetail
		if err = scanRequest(rows, &d.Request, &d.BookingDate, &d.Slots); err != nil {
			return nil, fmt.Errorf("scan user cancellation: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

// scanRequest scans the common cancellation_requests columns followed by
// any extra projection columns.
func scanRequest(rows *sql.Rows, req *domain.CancellationRequest, extra ...any) error {
	var (
		processedBy sql.NullString
		processedAt sql.NullTime
		adminNotes  sql.NullString
	)
	dest := []any{
		&req.ID, &req.UserID, &req.BookingID, &req.TicketCode, &req.ExhibitionTitle,
		&req.Reason, &req.RefundAmountCents, &req.Status, &processedBy, &processedAt,
		&adminNotes, &req.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	if processedBy.Valid {
		req.ProcessedBy = &processedBy.String
	}
	if processedAt.Valid {
		t := processedAt.Time
		req.ProcessedAt = &t
	}
	if adminNotes.Valid {
		req.AdminNotes = &adminNotes.String
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
