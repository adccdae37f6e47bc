package queries

import (
	"context"

	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"
)

type BookingQueries interface {
	Get(ctx context.Context, bookingID int) (*readmodel.BookingRM, error)
	IsActive(ctx context.Context, bookingID int, asOf string) (bool, error)
	Invoice(ctx context.Context, invoiceID int) (*readmodel.InvoiceRM, error)
}

type bookingQueriesImpl struct {
	store shared.Store
}

func NewBookingQueries(store shared.Store) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, bookingID int) (*readmodel.BookingRM, error) {
	b, err := q.store.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", bookingID)
	}
	return readmodel.FromBooking(b)
}

// IsActive reports whether asOf falls within the stay, both ends inclusive.
func (q *bookingQueriesImpl) IsActive(ctx context.Context, bookingID int, asOf string) (bool, error) {
	b, err := q.store.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return false, notFound(err, errs.ErrBookingNotFound, "booking %d", bookingID)
	}
	return b.IsActive(asOf)
}

func (q *bookingQueriesImpl) Invoice(ctx context.Context, invoiceID int) (*readmodel.InvoiceRM, error) {
	inv, err := q.store.Invoices().FindByID(ctx, invoiceID)
	if err != nil {
		return nil, notFound(err, errs.ErrInvoiceNotFound, "invoice %d", invoiceID)
	}
	return readmodel.FromInvoice(inv)
}
