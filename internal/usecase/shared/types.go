package shared

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindBookingConfirmed NotificationKind = "booking_confirmed"
	KindBookingCancelled NotificationKind = "booking_cancelled"
	KindPaymentSettled   NotificationKind = "payment_settled"
)

// Notification is an outbound guest message queued by a command.
type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	GuestID   int
	BookingID int
	Lines     []string
	CreatedAt time.Time
}

func NewNotification(kind NotificationKind, guestID, bookingID int, now time.Time, lines ...string) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      kind,
		GuestID:   guestID,
		BookingID: bookingID,
		Lines:     lines,
		CreatedAt: now,
	}
}
