package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/Alianda23/art-exhibit-hub-01/internal/handler/dto"
	"github.com/Alianda23/art-exhibit-hub-01/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// refundSLAMessage is the downstream contract communicated to the user on a
// successful request; the refund itself is executed by the payments team.
const refundSLAMessage = "Cancellation request submitted successfully. Refund will be processed within 3 working days."

type CancellationSvc interface {
	Request(ctx context.Context, userID, bookingID, reason string) (*domain.CancellationRequest, error)
	Decide(ctx context.Context, requestID, decision, adminID, notes string) (domain.CancellationStatus, error)
	ListAll(ctx context.Context) ([]*domain.AdminCancellationDetail, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CancellationDetail, error)
}

type BookingSvc interface {
	GetForUser(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type ExhibitionSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Exhibition, error)
	List(ctx context.Context) ([]*domain.Exhibition, error)
}

type Handler struct {
	cancellationService CancellationSvc
	bookingService      BookingSvc
	exhibitionService   ExhibitionSvc
}

func NewHandler(cancellationService CancellationSvc, bookingService BookingSvc, exhibitionService ExhibitionSvc) *Handler {
	return &Handler{
		cancellationService: cancellationService,
		bookingService:      bookingService,
		exhibitionService:   exhibitionService,
	}
}

// Cancellations

func (h *Handler) RequestCancellation(c *ginext.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.cancellationService.Request(c.Request.Context(), userID, req.BookingID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CancellationCreatedResponse{
		Success:        true,
		CancellationID: created.ID,
		Message:        refundSLAMessage,
	})
}

func (h *Handler) ListCancellations(c *ginext.Context) {
	cancellations, err := h.cancellationService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.AdminCancellationsResponse{
		Cancellations: make([]dto.AdminCancellationResponse, 0, len(cancellations)),
	}
	for _, d := range cancellations {
		resp.Cancellations = append(resp.Cancellations, dto.ToAdminCancellationResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DecideCancellation(c *ginext.Context) {
	adminID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cancellation id"})
		return
	}

	var req dto.DecideCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := h.cancellationService.Decide(c.Request.Context(), id, req.Status, adminID, req.AdminNotes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DecisionResponse{
		Success: true,
		Message: fmt.Sprintf("Cancellation request %s successfully", status),
	})
}

func (h *Handler) ListMyCancellations(c *ginext.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	cancellations, err := h.cancellationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.CancellationsResponse{
		Cancellations: make([]dto.CancellationResponse, 0, len(cancellations)),
	}
	for _, d := range cancellations {
		resp.Cancellations = append(resp.Cancellations, dto.ToCancellationResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetForUser(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Exhibitions

func (h *Handler) GetExhibition(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid exhibition id"})
		return
	}

	exhibition, err := h.exhibitionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExhibitionResponse(exhibition))
}

func (h *Handler) ListExhibitions(c *ginext.Context) {
	exhibitions, err := h.exhibitionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExhibitionResponse, 0, len(exhibitions))
	for _, e := range exhibitions {
		resp = append(resp, dto.ToExhibitionResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrExhibitionNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCancellationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrCancellationNotPending),
		errors.Is(err, domain.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
