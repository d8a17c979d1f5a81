package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	ExhibitionID     string        `json:"exhibition_id"`
	TicketCode       string        `json:"ticket_code"`
	Slots            int           `json:"slots"`
	TotalAmountCents int64         `json:"total_amount_cents"`
	Status           BookingStatus `json:"status"`
	BookingDate      time.Time     `json:"booking_date"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
