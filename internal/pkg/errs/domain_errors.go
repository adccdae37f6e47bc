package errs

import "errors"

// Domain-specific sentinel errors shared by the domain and usecase layers
var (
	// Format errors
	ErrMalformedDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrMalformedTimestamp = errors.New("time must be in YYYY-MM-DD HH:MM:SS format")

	// Booking errors
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrBookingNotFound  = errors.New("booking not found")

	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available")
	ErrInvalidNights   = errors.New("nights must be positive")

	// Guest errors
	ErrGuestNotFound = errors.New("guest not found")

	// Service errors
	ErrServiceRequestNotFound = errors.New("service request not found")

	// Feedback errors
	ErrRatingOutOfRange = errors.New("rating must be between 1.0 and 5.0")

	// Invoice errors
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrDiscountExceedsTotal     = errors.New("discount cannot exceed total amount")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrPaymentDeclined          = errors.New("payment declined")
	ErrInvoiceAlreadyIssued     = errors.New("booking already has an invoice")
	ErrInvoiceAlreadySettled    = errors.New("invoice already settled")

	// Loyalty errors
	ErrInsufficientPoints  = errors.New("not enough points")
	ErrInvalidAmount       = errors.New("points amount cannot be negative")
	ErrLedgerNotFound      = errors.New("loyalty ledger not found")
	ErrAlreadyEnrolled     = errors.New("guest already enrolled in loyalty program")
	ErrLedgerExpired       = errors.New("loyalty points have expired")
	ErrStayAlreadyCredited = errors.New("stay already credited")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")
)
