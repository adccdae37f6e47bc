package demo

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/domain/room"
	"royal-stay/internal/domain/service"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/pkg/ptr"
	"royal-stay/internal/usecase/commands"
	"royal-stay/internal/usecase/queries"
	"royal-stay/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	RegularGuestID = 1
	VIPGuestID     = 2

	StandardRoom = 101
	SuiteRoom    = 102
	DeluxeRoom   = 201
)

type Params struct {
	fx.In

	Store    shared.Store
	Clock    clock.Clock
	Bookings commands.BookingCommands
	Invoices commands.InvoiceCommands
	Loyalty  commands.LoyaltyCommands
	Services commands.ServiceCommands
	Rooms    queries.RoomQueries
	Guests   queries.GuestQueries
	Logger   *slog.Logger
}

// Runner seeds the sample hotel and walks one stay per guest through the front desk.
type Runner struct {
	p Params
}

func NewRunner(p Params) *Runner {
	return &Runner{p: p}
}

type Report struct {
	RegularBookingID int
	VIPBookingID     int
	Notifications    []shared.Notification
}

// Seed registers the sample rooms and guests.
func (r *Runner) Seed(ctx context.Context) error {
	standard := room.NewRoom(StandardRoom, room.KindStandard, invoice.Amount("99.99"))
	standard.AddAmenity("WiFi")
	standard.AddAmenity("TV")

	suite := room.NewRoom(SuiteRoom, room.KindSuite, invoice.Amount("149.99"))
	suite.AddAmenity("WiFi")
	suite.AddAmenity("Minibar")

	deluxe := room.NewDeluxeRoom(DeluxeRoom, invoice.Amount("199.99"), room.DeluxeFeatures{
		View:              "Ocean",
		Jacuzzi:           true,
		BreakfastIncluded: true,
	})
	deluxe.AddAmenity("WiFi")

	for _, rm := range []*room.Room{standard, suite, deluxe} {
		if err := r.p.Store.Rooms().Create(ctx, rm); err != nil {
			return errs.Wrapf(err, "seed room %d", rm.Number())
		}
	}

	regular := guest.NewGuest(RegularGuestID, "Ali AlKhaldi", "alice@email.com", "")
	vip := guest.NewVIPGuest(VIPGuestID, "Rashid AlHashmi", "bob@email.com", guest.VIPPerks{
		PersonalAssistant:     true,
		PrivateTransportation: true,
	})
	for _, g := range []*guest.Guest{regular, vip} {
		if err := r.p.Store.Guests().Create(ctx, g); err != nil {
			return errs.Wrapf(err, "seed guest %d", g.ID())
		}
	}
	return nil
}

// Run books, bills and rewards a regular stay, then books, settles and cancels a VIP stay.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	log := r.p.Logger
	today := calendar.DateOf(r.p.Clock.Now())

	deluxeRooms, err := r.p.Rooms.FindAvailable(ctx, queries.RoomFilter{Type: room.KindDeluxe})
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Deluxe rooms available", slog.Int("count", len(deluxeRooms)))

	regular, err := r.p.Bookings.Create(ctx, commands.CreateBookingInput{
		GuestID:    RegularGuestID,
		RoomNumber: StandardRoom,
		CheckIn:    today.AddDays(1).String(),
		CheckOut:   today.AddDays(3).String(),
	})
	if err != nil {
		return nil, err
	}

	inv, err := r.p.Invoices.Issue(ctx, commands.IssueInvoiceInput{
		BookingID:     regular.Booking.ID,
		PaymentMethod: invoice.MethodCreditCard.String(),
	})
	if err != nil {
		return nil, err
	}
	if _, err := r.p.Invoices.Settle(ctx, inv.ID); err != nil {
		return nil, err
	}

	if _, err := r.p.Loyalty.Enroll(ctx, commands.EnrollInput{GuestID: RegularGuestID}); err != nil {
		return nil, err
	}
	program, err := r.p.Loyalty.EarnForStay(ctx, regular.Booking.ID)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Loyalty balance", slog.Int("balance", program.Balance), slog.String("tier", program.Tier))

	if _, err := r.p.Services.Request(ctx, commands.RequestServiceInput{
		GuestID:     VIPGuestID,
		ServiceType: "Spa Treatment",
		Status:      ptr.Of(service.StatusScheduled),
		Premium: &service.PremiumDetails{
			Level:            "Platinum",
			SpecializedStaff: true,
			ExclusiveAccess:  true,
		},
	}); err != nil {
		return nil, err
	}
	if _, err := r.p.Services.SubmitFeedback(ctx, commands.SubmitFeedbackInput{
		GuestID:  RegularGuestID,
		Rating:   4.5,
		Comments: "Great stay!",
	}); err != nil {
		return nil, err
	}

	vip, err := r.p.Bookings.Create(ctx, commands.CreateBookingInput{
		GuestID:    VIPGuestID,
		RoomNumber: DeluxeRoom,
		CheckIn:    today.AddDays(5).String(),
		CheckOut:   today.AddDays(10).String(),
	})
	if err != nil {
		return nil, err
	}
	vipInvoice, err := r.p.Invoices.Issue(ctx, commands.IssueInvoiceInput{
		BookingID:       vip.Booking.ID,
		DiscountPercent: 10,
		PaymentMethod:   invoice.MethodBankTransfer.String(),
	})
	if err != nil {
		return nil, err
	}
	if _, err := r.p.Invoices.Settle(ctx, vipInvoice.ID); err != nil {
		return nil, err
	}
	cancelled, err := r.p.Bookings.Cancel(ctx, vip.Booking.ID)
	if err != nil {
		return nil, err
	}
	if cancelled.Invoice != nil {
		log.InfoContext(ctx, "VIP refund applied",
			slog.String("status", cancelled.Invoice.PaymentStatus),
			slog.String("net_total", cancelled.Invoice.NetTotal),
		)
	}

	spent, err := r.p.Guests.TotalSpent(ctx, RegularGuestID)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Guest spend", slog.Int("guest_id", RegularGuestID), slog.String("total", spent.StringFixed(2)))

	notes, err := r.p.Store.Notifications().List(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		for _, line := range n.Lines {
			log.InfoContext(ctx, line, slog.String("kind", string(n.Kind)))
		}
	}

	return &Report{
		RegularBookingID: regular.Booking.ID,
		VIPBookingID:     vip.Booking.ID,
		Notifications:    notes,
	}, nil
}
