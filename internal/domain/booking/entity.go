package booking

import (
	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/pkg/errs"
)

var (
	ErrInvalidDateRange = errs.ErrInvalidDateRange
	ErrAlreadyCancelled = errs.ErrAlreadyCancelled
)

type Booking struct {
	id         int
	guestID    int
	roomNumber int
	checkIn    calendar.Date
	checkOut   calendar.Date
	cancelled  bool
	invoice    *invoice.Invoice
}

// NewBooking enforces checkOut > checkIn at construction, not only through the setters.
func NewBooking(id, guestID, roomNumber int, checkIn, checkOut string) (*Booking, error) {
	in, out, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         id,
		guestID:    guestID,
		roomNumber: roomNumber,
		checkIn:    in,
		checkOut:   out,
	}, nil
}

// ReconstructBooking rebuilds a booking from stored fields without validation.
func ReconstructBooking(
	id, guestID, roomNumber int,
	checkIn, checkOut calendar.Date,
	cancelled bool,
	inv *invoice.Invoice,
) *Booking {
	return &Booking{
		id:         id,
		guestID:    guestID,
		roomNumber: roomNumber,
		checkIn:    checkIn,
		checkOut:   checkOut,
		cancelled:  cancelled,
		invoice:    inv,
	}
}

// ValidateDateOrder checks both strings are YYYY-MM-DD and that checkOut is strictly after checkIn.
func ValidateDateOrder(checkIn, checkOut string) error {
	_, _, err := parseRange(checkIn, checkOut)
	return err
}

func parseRange(checkIn, checkOut string) (calendar.Date, calendar.Date, error) {
	in, err := calendar.ParseDate(checkIn)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	out, err := calendar.ParseDate(checkOut)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	if err := checkOrder(in, out); err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return in, out, nil
}

func checkOrder(in, out calendar.Date) error {
	if !out.After(in) {
		return errs.Newf(ErrInvalidDateRange, "check-in %s, check-out %s", in, out)
	}
	return nil
}

func (b *Booking) SetCheckIn(date string) error {
	in, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}
	if !b.checkOut.IsZero() {
		if err := checkOrder(in, b.checkOut); err != nil {
			return err
		}
	}
	b.checkIn = in
	return nil
}

func (b *Booking) SetCheckOut(date string) error {
	out, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}
	if !b.checkIn.IsZero() {
		if err := checkOrder(b.checkIn, out); err != nil {
			return err
		}
	}
	b.checkOut = out
	return nil
}

// Duration is the number of nights: check-out minus check-in in calendar days.
func (b *Booking) Duration() int {
	return b.checkIn.DaysUntil(b.checkOut)
}

func (b *Booking) IsActive(asOf string) (bool, error) {
	d, err := calendar.ParseDate(asOf)
	if err != nil {
		return false, err
	}
	return b.IsActiveOn(d), nil
}

func (b *Booking) IsActiveOn(d calendar.Date) bool {
	return !b.cancelled && d.Between(b.checkIn, b.checkOut)
}

// Cancel is one-way; a second call fails and leaves the booking cancelled.
func (b *Booking) Cancel() error {
	if b.cancelled {
		return errs.Newf(ErrAlreadyCancelled, "booking #%d", b.id)
	}
	b.cancelled = true
	return nil
}

func (b *Booking) AttachInvoice(inv *invoice.Invoice) {
	b.invoice = inv
}

func (b *Booking) HasInvoice() bool {
	return b.invoice != nil
}

func (b *Booking) ID() int                   { return b.id }
func (b *Booking) GuestID() int              { return b.guestID }
func (b *Booking) RoomNumber() int           { return b.roomNumber }
func (b *Booking) CheckIn() calendar.Date    { return b.checkIn }
func (b *Booking) CheckOut() calendar.Date   { return b.checkOut }
func (b *Booking) IsCancelled() bool         { return b.cancelled }
func (b *Booking) Invoice() *invoice.Invoice { return b.invoice }
