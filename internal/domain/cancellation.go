package domain

import "time"

type CancellationStatus string

const (
	CancellationStatusPending  CancellationStatus = "pending"
	CancellationStatusApproved CancellationStatus = "approved"
	CancellationStatusRejected CancellationStatus = "rejected"
)

// ActiveCancellationStatuses are the statuses that count as a live refund
// claim against a booking. At most one request per booking may hold one of
// these at any time.
var ActiveCancellationStatuses = []CancellationStatus{
	CancellationStatusPending,
	CancellationStatusApproved,
}

// ParseDecision validates an admin decision. Only the two terminal states
// are accepted; a request can never be moved back to pending.
func ParseDecision(s string) (CancellationStatus, error) {
	switch CancellationStatus(s) {
	case CancellationStatusApproved:
		return CancellationStatusApproved, nil
	case CancellationStatusRejected:
		return CancellationStatusRejected, nil
	default:
		return "", ErrValidation
	}
}

// CancellationRequest is the audit record of a user's claim to cancel a
// booking. TicketCode, ExhibitionTitle and RefundAmountCents are snapshots
// taken at creation time so the record stays stable even if the source
// booking or exhibition is later modified.
type CancellationRequest struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	BookingID         string             `json:"booking_id"`
	TicketCode        string             `json:"ticket_code"`
	ExhibitionTitle   string             `json:"exhibition_title"`
	Reason            string             `json:"reason"`
	RefundAmountCents int64              `json:"refund_amount_cents"`
	Status            CancellationStatus `json:"status"`
	ProcessedBy       *string            `json:"processed_by"`
	ProcessedAt       *time.Time         `json:"processed_at"`
	AdminNotes        *string            `json:"admin_notes"`
	CreatedAt         time.Time          `json:"created_at"`
}

// CancellationDetail is the user-facing projection: a request joined with
// the booking it cancelled.
type CancellationDetail struct {
	Request     CancellationRequest `json:"request"`
	BookingDate time.Time           `json:"booking_date"`
	Slots       int                 `json:"slots"`
}

// AdminCancellationDetail extends the user projection with user identity
// and exhibition context for the admin dashboard.
type AdminCancellationDetail struct {
	CancellationDetail
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type DecideCancellationInput struct {
	RequestID  string
	Decision   CancellationStatus
	AdminID    string
	AdminNotes string
}
