package domain

import "errors"

var (
	// ErrBookingNotFound deliberately covers both "no such booking" and
	// "booking belongs to someone else", so callers cannot probe for the
	// existence of other users' bookings.
	ErrBookingNotFound    = errors.New("booking not found or you don't have permission to cancel it")
	ErrExhibitionNotFound = errors.New("exhibition not found")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrAlreadyCancelled       = errors.New("this ticket is already cancelled")
	ErrDuplicateRequest       = errors.New("a cancellation request for this ticket is already pending")
	ErrCancellationNotFound   = errors.New("cancellation request not found")
	ErrCancellationNotPending = errors.New("cancellation request is already decided")
	ErrCapacityExceeded       = errors.New("restoring slots would exceed exhibition capacity")
)

var (
	ErrValidation = errors.New("validation error")
)
