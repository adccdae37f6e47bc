package commands

import (
	"context"
	"fmt"
	"log/slog"

	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type InvoiceCommands interface {
	Issue(ctx context.Context, in IssueInvoiceInput) (*readmodel.InvoiceRM, error)
	Settle(ctx context.Context, invoiceID int) (*readmodel.InvoiceRM, error)
}

type invoiceCommandsImpl struct {
	store   shared.Store
	gateway invoice.Gateway
	clock   clock.Clock
	cfg     config.BillingConfig
	logger  *slog.Logger
}

func NewInvoiceCommands(
	store shared.Store,
	gateway invoice.Gateway,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		store:   store,
		gateway: gateway,
		clock:   clk,
		cfg:     cfg.Billing,
		logger:  logger,
	}
}

// Issue bills the booking's nights at the room rate. The discount is a percentage
// of the gross, rounded to cents.
func (c *invoiceCommandsImpl) Issue(ctx context.Context, in IssueInvoiceInput) (*readmodel.InvoiceRM, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	method := invoice.PaymentMethod(in.PaymentMethod)
	if !method.IsKnown() {
		return nil, errs.Newf(errs.ErrUnsupportedPaymentMethod, "%q", in.PaymentMethod)
	}

	b, err := c.store.Bookings().FindByID(ctx, in.BookingID)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", in.BookingID)
	}
	if b.IsCancelled() {
		return nil, errs.Newf(errs.ErrAlreadyCancelled, "booking #%d cannot be invoiced", b.ID())
	}
	if b.HasInvoice() {
		return nil, errs.Newf(errs.ErrInvoiceAlreadyIssued, "booking #%d", b.ID())
	}

	rm, err := c.store.Rooms().FindByNumber(ctx, b.RoomNumber())
	if err != nil {
		return nil, notFound(err, errs.ErrRoomNotFound, "room %d", b.RoomNumber())
	}
	gross, err := rm.CalculateTotalCost(b.Duration())
	if err != nil {
		return nil, err
	}
	discount := invoice.RoundCents(gross.Mul(decimal.NewFromFloat(in.DiscountPercent)).Div(decimal.NewFromInt(100)))

	inv := invoice.NewInvoice(c.store.Invoices().NextID(ctx), gross, discount, method, b.ID(), invoice.StatusPending)
	if err := inv.ValidateDiscount(); err != nil {
		return nil, err
	}
	if err := c.store.Invoices().Create(ctx, inv); err != nil {
		return nil, errs.Wrap(err, "failed to store invoice")
	}

	b.AttachInvoice(inv)
	if err := c.store.Bookings().Update(ctx, b); err != nil {
		return nil, errs.Wrap(err, "failed to attach invoice")
	}

	c.logger.InfoContext(ctx, "Invoice issued",
		slog.Int("invoice_id", inv.ID()),
		slog.Int("booking_id", b.ID()),
		slog.String("gross", gross.StringFixed(2)),
		slog.String("discount", discount.StringFixed(2)),
		slog.String("currency", c.cfg.Currency),
	)

	return readmodel.FromInvoice(inv)
}

// Settle charges the net total through the gateway and marks the invoice completed
// on approval. A declined charge leaves the invoice untouched. Invoices of cancelled
// bookings are never charged.
func (c *invoiceCommandsImpl) Settle(ctx context.Context, invoiceID int) (*readmodel.InvoiceRM, error) {
	inv, err := c.store.Invoices().FindByID(ctx, invoiceID)
	if err != nil {
		return nil, notFound(err, errs.ErrInvoiceNotFound, "invoice %d", invoiceID)
	}
	if inv.PaymentStatus() != invoice.StatusPending {
		return nil, errs.Newf(errs.ErrInvoiceAlreadySettled, "invoice #%d is %s", inv.ID(), inv.PaymentStatus())
	}
	b, err := c.store.Bookings().FindByID(ctx, inv.BookingID())
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", inv.BookingID())
	}
	if b.IsCancelled() {
		return nil, errs.Newf(errs.ErrAlreadyCancelled, "invoice #%d belongs to cancelled booking #%d", inv.ID(), b.ID())
	}

	ok, err := inv.ProcessPayment(ctx, c.gateway)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.logger.WarnContext(ctx, "Payment declined",
			slog.Int("invoice_id", inv.ID()),
			slog.String("method", inv.PaymentMethod().String()),
		)
		return nil, errs.Newf(errs.ErrPaymentDeclined, "invoice #%d", inv.ID())
	}

	inv.SetPaymentStatus(invoice.StatusCompleted)
	if err := c.store.Invoices().Update(ctx, inv); err != nil {
		return nil, errs.Wrap(err, "failed to store payment")
	}

	note := shared.NewNotification(shared.KindPaymentSettled, b.GuestID(), b.ID(), c.clock.Now(),
		fmt.Sprintf("PAYMENT: Invoice #%d settled, %s %s charged via %s",
			inv.ID(), inv.NetTotal().StringFixed(2), c.cfg.Currency, inv.PaymentMethod()))
	if err := c.store.Notifications().CreateJob(ctx, note); err != nil {
		return nil, errs.Wrap(err, "failed to queue payment receipt")
	}

	c.logger.InfoContext(ctx, "Invoice settled",
		slog.Int("invoice_id", inv.ID()),
		slog.String("net_total", inv.NetTotal().StringFixed(2)),
	)

	return readmodel.FromInvoice(inv)
}
