//go:build unit

package builder

import (
	"royal-stay/internal/domain/booking"
	"royal-stay/internal/domain/invoice"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID         int
	GuestID    int
	RoomNumber int
	CheckIn    string
	CheckOut   string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         1,
		GuestID:    1,
		RoomNumber: 101,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.ID, b.GuestID, b.RoomNumber, b.CheckIn, b.CheckOut)
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithGuestID(guestID int) *BookingBuilder {
	b.GuestID = guestID
	return b
}

func (b *BookingBuilder) WithRoomNumber(number int) *BookingBuilder {
	b.RoomNumber = number
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

type InvoiceBuilder struct {
	ID        int
	BookingID int
	Total     string
	Discount  string
	Method    invoice.PaymentMethod
	Status    invoice.PaymentStatus
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		ID:        1,
		BookingID: 1,
		Total:     "1399.93",
		Discount:  "139.99",
		Method:    invoice.MethodCreditCard,
		Status:    invoice.StatusPending,
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) BuildDomain() *invoice.Invoice {
	return invoice.NewInvoice(b.ID, decimal.RequireFromString(b.Total), decimal.RequireFromString(b.Discount),
		b.Method, b.BookingID, b.Status)
}

func (b *InvoiceBuilder) WithAmounts(total, discount string) *InvoiceBuilder {
	b.Total = total
	b.Discount = discount
	return b
}

func (b *InvoiceBuilder) WithStatus(status invoice.PaymentStatus) *InvoiceBuilder {
	b.Status = status
	return b
}

func (b *InvoiceBuilder) AsPaid() *InvoiceBuilder {
	b.Status = invoice.StatusPaid
	return b
}
