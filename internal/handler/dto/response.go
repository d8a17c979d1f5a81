package dto

import (
	"time"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
)

type CancellationCreatedResponse struct {
	Success        bool   `json:"success"`
	CancellationID string `json:"cancellation_id"`
	Message        string `json:"message"`
}

type DecisionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CancellationResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	BookingID         string  `json:"booking_id"`
	TicketCode        string  `json:"ticket_code"`
	ExhibitionTitle   string  `json:"exhibition_title"`
	Reason            string  `json:"reason"`
	RefundAmountCents int64   `json:"refund_amount_cents"`
	Status            string  `json:"status"`
	ProcessedBy       *string `json:"processed_by,omitempty"`
	ProcessedAt       *string `json:"processed_at,omitempty"`
	AdminNotes        *string `json:"admin_notes,omitempty"`
	CreatedAt         string  `json:"created_at"`
	BookingDate       string  `json:"booking_date"`
	Slots             int     `json:"slots"`
}

type AdminCancellationResponse struct {
	CancellationResponse
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CancellationsResponse struct {
	Cancellations []CancellationResponse `json:"cancellations"`
}

type AdminCancellationsResponse struct {
	Cancellations []AdminCancellationResponse `json:"cancellations"`
}

type BookingResponse struct {
	ID               string `json:"id"`
	ExhibitionID     string `json:"exhibition_id"`
	TicketCode       string `json:"ticket_code"`
	Slots            int    `json:"slots"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Status           string `json:"status"`
	BookingDate      string `json:"booking_date"`
	CreatedAt        string `json:"created_at"`
}

type ExhibitionResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Location       string `json:"location"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCancellationResponse(d *domain.CancellationDetail) CancellationResponse {
	resp := CancellationResponse{
		ID:                d.Request.ID,
		UserID:            d.Request.UserID,
		BookingID:         d.Request.BookingID,
		TicketCode:        d.Request.TicketCode,
		ExhibitionTitle:   d.Request.ExhibitionTitle,
		Reason:            d.Request.Reason,
		RefundAmountCents: d.Request.RefundAmountCents,
		Status:            string(d.Request.Status),
		ProcessedBy:       d.Request.ProcessedBy,
		AdminNotes:        d.Request.AdminNotes,
		CreatedAt:         d.Request.CreatedAt.Format(time.RFC3339),
		BookingDate:       d.BookingDate.Format(time.RFC3339),
		Slots:             d.Slots,
	}
	if d.Request.ProcessedAt != nil {
		processedAt := d.Request.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processedAt
	}
	return resp
}

func ToAdminCancellationResponse(d *domain.AdminCancellationDetail) AdminCancellationResponse {
	return AdminCancellationResponse{
		CancellationResponse: ToCancellationResponse(&d.CancellationDetail),
		UserName:             d.UserName,
		UserEmail:            d.UserEmail,
		Location:             d.Location,
		StartDate:            d.StartDate.Format(time.RFC3339),
		EndDate:              d.EndDate.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ExhibitionID:     b.ExhibitionID,
		TicketCode:       b.TicketCode,
		Slots:            b.Slots,
		TotalAmountCents: b.TotalAmountCents,
		Status:           string(b.Status),
		BookingDate:      b.BookingDate.Format(time.RFC3339),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToExhibitionResponse(e *domain.Exhibition) ExhibitionResponse {
	return ExhibitionResponse{
		ID:             e.ID,
		Title:          e.Title,
		Location:       e.Location,
		StartDate:      e.StartDate.Format(time.RFC3339),
		EndDate:        e.EndDate.Format(time.RFC3339),
		TotalSlots:     e.TotalSlots,
		AvailableSlots: e.AvailableSlots,
	}
}
