package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"royal-stay/internal/domain/booking"
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateBookingResult struct {
	Booking      *readmodel.BookingRM
	Confirmation shared.Notification
}

type CancelBookingResult struct {
	Booking *readmodel.BookingRM
	Invoice *readmodel.InvoiceRM // nil when no invoice was attached
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	ChangeDates(ctx context.Context, in ChangeDatesInput) (*readmodel.BookingRM, error)
	Cancel(ctx context.Context, bookingID int) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	store  shared.Store
	clock  clock.Clock
	cfg    config.BillingConfig
	logger *slog.Logger
}

func NewBookingCommands(store shared.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		store:  store,
		clock:  clk,
		cfg:    cfg.Billing,
		logger: logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	g, err := c.store.Guests().FindByID(ctx, in.GuestID)
	if err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", in.GuestID)
	}
	rm, err := c.store.Rooms().FindByNumber(ctx, in.RoomNumber)
	if err != nil {
		return nil, notFound(err, errs.ErrRoomNotFound, "room %d", in.RoomNumber)
	}
	if !rm.IsAvailable() {
		return nil, errs.Newf(errs.ErrRoomUnavailable, "room %d", rm.Number())
	}

	b, err := booking.NewBooking(c.store.Bookings().NextID(ctx), g.ID(), rm.Number(), in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := c.store.Bookings().Create(ctx, b); err != nil {
		return nil, errs.Wrap(err, "failed to store booking")
	}

	rm.SetAvailability(false)
	if err := c.store.Rooms().Update(ctx, rm); err != nil {
		return nil, errs.Wrap(err, "failed to reserve room")
	}
	g.AddReservation(b)
	if err := c.store.Guests().Update(ctx, g); err != nil {
		return nil, errs.Wrap(err, "failed to record reservation")
	}

	note := shared.NewNotification(shared.KindBookingConfirmed, g.ID(), b.ID(), c.clock.Now(), confirmationLines(g, b)...)
	if err := c.store.Notifications().CreateJob(ctx, note); err != nil {
		return nil, errs.Wrap(err, "failed to queue confirmation")
	}

	c.logger.InfoContext(ctx, "Booking confirmed",
		slog.Int("booking_id", b.ID()),
		slog.Int("guest_id", g.ID()),
		slog.Int("room_number", rm.Number()),
		slog.Int("nights", b.Duration()),
		slog.Bool("vip", g.IsVIP()),
	)

	view, err := readmodel.FromBooking(b)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, Confirmation: note}, nil
}

func confirmationLines(g *guest.Guest, b *booking.Booking) []string {
	prefix := "CONFIRMATION"
	if g.IsVIP() {
		prefix = "VIP CONFIRMATION"
	}
	lines := []string{fmt.Sprintf("%s: Booking #%d confirmed for %s in Room %d from %s to %s",
		prefix, b.ID(), g.Name(), b.RoomNumber(), b.CheckIn(), b.CheckOut())}

	if perks, ok := g.VIP(); ok {
		if benefits := perks.Benefits(); len(benefits) > 0 {
			lines = append(lines, "VIP Benefits: "+strings.Join(benefits, ", "))
		}
	}
	return lines
}

// ChangeDates moves both ends through the booking's validated setters, ordering the
// two calls so the intermediate pair is never reversed.
func (c *bookingCommandsImpl) ChangeDates(ctx context.Context, in ChangeDatesInput) (*readmodel.BookingRM, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := booking.ValidateDateOrder(in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}

	b, err := c.store.Bookings().FindByID(ctx, in.BookingID)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", in.BookingID)
	}
	if b.IsCancelled() {
		return nil, errs.Newf(errs.ErrAlreadyCancelled, "booking #%d cannot be rescheduled", b.ID())
	}

	first, second := b.SetCheckIn, b.SetCheckOut
	firstArg, secondArg := in.CheckIn, in.CheckOut
	if in.CheckIn >= b.CheckOut().String() {
		first, second = b.SetCheckOut, b.SetCheckIn
		firstArg, secondArg = in.CheckOut, in.CheckIn
	}
	if err := first(firstArg); err != nil {
		return nil, err
	}
	if err := second(secondArg); err != nil {
		return nil, err
	}

	if err := c.store.Bookings().Update(ctx, b); err != nil {
		return nil, errs.Wrap(err, "failed to store booking")
	}

	c.logger.InfoContext(ctx, "Booking rescheduled",
		slog.Int("booking_id", b.ID()),
		slog.String("check_in", b.CheckIn().String()),
		slog.String("check_out", b.CheckOut().String()),
	)

	return readmodel.FromBooking(b)
}

// Cancel releases the room and, for a settled invoice, applies the refund policy:
// regular guests are refunded in full, VIP guests keep RefundRatioVIP of the gross
// as a discount and the invoice is marked partially refunded.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID int) (*CancelBookingResult, error) {
	b, err := c.store.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", bookingID)
	}
	if err := b.Cancel(); err != nil {
		return nil, err
	}
	if err := c.store.Bookings().Update(ctx, b); err != nil {
		return nil, errs.Wrap(err, "failed to store booking")
	}

	rm, err := c.store.Rooms().FindByNumber(ctx, b.RoomNumber())
	if err != nil {
		return nil, notFound(err, errs.ErrRoomNotFound, "room %d", b.RoomNumber())
	}
	rm.SetAvailability(true)
	if err := c.store.Rooms().Update(ctx, rm); err != nil {
		return nil, errs.Wrap(err, "failed to release room")
	}

	result := &CancelBookingResult{}
	if inv := b.Invoice(); inv != nil && inv.PaymentStatus().IsSettled() {
		g, err := c.store.Guests().FindByID(ctx, b.GuestID())
		if err != nil {
			return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", b.GuestID())
		}
		c.applyRefund(g, inv)
		if err := c.store.Invoices().Update(ctx, inv); err != nil {
			return nil, errs.Wrap(err, "failed to store refund")
		}
		if result.Invoice, err = readmodel.FromInvoice(inv); err != nil {
			return nil, err
		}
	}

	note := shared.NewNotification(shared.KindBookingCancelled, b.GuestID(), b.ID(), c.clock.Now(),
		fmt.Sprintf("CANCELLATION: Booking #%d for Room %d has been cancelled", b.ID(), b.RoomNumber()))
	if err := c.store.Notifications().CreateJob(ctx, note); err != nil {
		return nil, errs.Wrap(err, "failed to queue cancellation notice")
	}

	c.logger.InfoContext(ctx, "Booking cancelled",
		slog.Int("booking_id", b.ID()),
		slog.Int("room_number", b.RoomNumber()),
		slog.Bool("refunded", result.Invoice != nil),
	)

	if result.Booking, err = readmodel.FromBooking(b); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) applyRefund(g *guest.Guest, inv *invoice.Invoice) {
	if !g.IsVIP() {
		inv.SetPaymentStatus(invoice.StatusRefunded)
		return
	}
	refund := invoice.RoundCents(inv.TotalAmount().Mul(decimal.NewFromFloat(c.cfg.RefundRatioVIP)))
	inv.SetDiscount(refund)
	inv.SetPaymentStatus(invoice.StatusPartiallyRefunded)
}
