//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/domain/service"
	"royal-stay/internal/infra/memory"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/pkg/logger"
	"royal-stay/internal/pkg/ptr"
	"royal-stay/internal/usecase/commands"
	"royal-stay/internal/usecase/shared"
	"royal-stay/tests/common/storetest"
	invoicemock "royal-stay/tests/mock/invoice"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	regularGuest = 1
	vipGuest     = 2
	standardRoom = 101
	deluxeRoom   = 201
)

type CommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	clock    *clock.MockClock
	mockCtrl *gomock.Controller
	gateway  *invoicemock.MockGateway

	bookings commands.BookingCommands
	invoices commands.InvoiceCommands
	loyalty  commands.LoyaltyCommands
	services commands.ServiceCommands
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storetest.NewStore(s.T())
	storetest.SeedReferenceData(s.T(), s.store)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = invoicemock.NewMockGateway(s.mockCtrl)

	cfg := config.NewTestConfig()
	log := logger.Discard()
	s.bookings = commands.NewBookingCommands(s.store, s.clock, cfg, log)
	s.invoices = commands.NewInvoiceCommands(s.store, s.gateway, s.clock, cfg, log)
	s.loyalty = commands.NewLoyaltyCommands(s.store, s.clock, cfg, log)
	s.services = commands.NewServiceCommands(s.store, s.clock, log)
}

func (s *CommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) book(guestID, roomNumber int, checkIn, checkOut string) int {
	s.T().Helper()
	res, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{
		GuestID:    guestID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	s.Require().NoError(err)
	return res.Booking.ID
}

func (s *CommandsTestSuite) issueAndSettle(bookingID int, percent float64) int {
	s.T().Helper()
	inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{
		BookingID:       bookingID,
		DiscountPercent: percent,
		PaymentMethod:   invoice.MethodCreditCard.String(),
	})
	s.Require().NoError(err)

	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	_, err = s.invoices.Settle(s.ctx, inv.ID)
	s.Require().NoError(err)
	return inv.ID
}

// ================================================================================
// Bookings
// ================================================================================

func (s *CommandsTestSuite) TestCreateBooking() {
	s.Run("regular guest", func() {
		res, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{
			GuestID:    regularGuest,
			RoomNumber: standardRoom,
			CheckIn:    "2025-06-01",
			CheckOut:   "2025-06-03",
		})
		s.Require().NoError(err)

		s.Equal(1, res.Booking.ID)
		s.Equal(2, res.Booking.Duration)
		s.Equal(shared.KindBookingConfirmed, res.Confirmation.Kind)
		s.Equal([]string{
			"CONFIRMATION: Booking #1 confirmed for Ali AlKhaldi in Room 101 from 2025-06-01 to 2025-06-03",
		}, res.Confirmation.Lines)

		rm, err := s.store.Rooms().FindByNumber(s.ctx, standardRoom)
		s.Require().NoError(err)
		s.False(rm.IsAvailable())

		g, err := s.store.Guests().FindByID(s.ctx, regularGuest)
		s.Require().NoError(err)
		s.Len(g.Reservations(), 1)

		queued, err := s.store.Notifications().List(s.ctx)
		s.Require().NoError(err)
		s.Len(queued, 1)
	})

	s.Run("vip guest", func() {
		res, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{
			GuestID:    vipGuest,
			RoomNumber: deluxeRoom,
			CheckIn:    "2025-06-01",
			CheckOut:   "2025-06-08",
		})
		s.Require().NoError(err)

		s.Equal([]string{
			"VIP CONFIRMATION: Booking #1 confirmed for Rashid AlHashmi in Room 201 from 2025-06-01 to 2025-06-08",
			"VIP Benefits: Personal Assistant, Private Transportation",
		}, res.Confirmation.Lines)
	})

	cases := []struct {
		name  string
		input commands.CreateBookingInput
		errIs error
	}{
		{
			name:  "unknown guest",
			input: commands.CreateBookingInput{GuestID: 99, RoomNumber: standardRoom, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			errIs: errs.ErrGuestNotFound,
		},
		{
			name:  "unknown room",
			input: commands.CreateBookingInput{GuestID: regularGuest, RoomNumber: 999, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			errIs: errs.ErrRoomNotFound,
		},
		{
			name:  "reversed dates",
			input: commands.CreateBookingInput{GuestID: regularGuest, RoomNumber: standardRoom, CheckIn: "2025-06-03", CheckOut: "2025-06-01"},
			errIs: errs.ErrInvalidDateRange,
		},
		{
			name:  "malformed date",
			input: commands.CreateBookingInput{GuestID: regularGuest, RoomNumber: standardRoom, CheckIn: "2025/04/15", CheckOut: "2025-06-01"},
			errIs: errs.ErrMalformedDate,
		},
		{
			name:  "missing guest id",
			input: commands.CreateBookingInput{RoomNumber: standardRoom, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			errIs: errs.ErrDomainValidationFailed,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := s.bookings.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.errIs), "got %v", err)
			s.Nil(res)

			rm, err := s.store.Rooms().FindByNumber(s.ctx, standardRoom)
			s.Require().NoError(err)
			s.True(rm.IsAvailable())
		})
	}

	s.Run("room already taken", func() {
		s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		_, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{
			GuestID:    vipGuest,
			RoomNumber: standardRoom,
			CheckIn:    "2025-07-01",
			CheckOut:   "2025-07-03",
		})
		s.Require().ErrorIs(err, errs.ErrRoomUnavailable)
	})
}

func (s *CommandsTestSuite) TestChangeDates() {
	s.Run("move past the current check-out", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		got, err := s.bookings.ChangeDates(s.ctx, commands.ChangeDatesInput{BookingID: id, CheckIn: "2025-06-05", CheckOut: "2025-06-09"})
		s.Require().NoError(err)
		s.Equal("2025-06-05", got.CheckIn)
		s.Equal("2025-06-09", got.CheckOut)
		s.Equal(4, got.Duration)
	})

	s.Run("move earlier", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-10", "2025-06-12")

		got, err := s.bookings.ChangeDates(s.ctx, commands.ChangeDatesInput{BookingID: id, CheckIn: "2025-06-01", CheckOut: "2025-06-02"})
		s.Require().NoError(err)
		s.Equal(1, got.Duration)
	})

	s.Run("reversed range leaves the booking unchanged", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		_, err := s.bookings.ChangeDates(s.ctx, commands.ChangeDatesInput{BookingID: id, CheckIn: "2025-06-09", CheckOut: "2025-06-05"})
		s.Require().ErrorIs(err, errs.ErrInvalidDateRange)

		b, err := s.store.Bookings().FindByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("2025-06-01", b.CheckIn().String())
		s.Equal("2025-06-03", b.CheckOut().String())
	})

	s.Run("cancelled booking", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		_, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)

		_, err = s.bookings.ChangeDates(s.ctx, commands.ChangeDatesInput{BookingID: id, CheckIn: "2025-06-05", CheckOut: "2025-06-09"})
		s.Require().ErrorIs(err, errs.ErrAlreadyCancelled)
	})
}

func (s *CommandsTestSuite) TestCancelBooking() {
	s.Run("releases the room", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		res, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)
		s.True(res.Booking.IsCancelled)
		s.Nil(res.Invoice)

		rm, err := s.store.Rooms().FindByNumber(s.ctx, standardRoom)
		s.Require().NoError(err)
		s.True(rm.IsAvailable())
	})

	s.Run("second cancel fails", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		_, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)

		_, err = s.bookings.Cancel(s.ctx, id)
		s.Require().ErrorIs(err, errs.ErrAlreadyCancelled)
	})

	s.Run("unknown booking", func() {
		_, err := s.bookings.Cancel(s.ctx, 42)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("regular guest is refunded in full", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		s.issueAndSettle(id, 0)

		res, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(res.Invoice)
		s.Equal(invoice.StatusRefunded.String(), res.Invoice.PaymentStatus)
		s.Equal("199.98", res.Invoice.TotalAmount)
	})

	s.Run("vip guest is partially refunded", func() {
		id := s.book(vipGuest, deluxeRoom, "2025-06-01", "2025-06-08")
		s.issueAndSettle(id, 0)

		res, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(res.Invoice)
		s.Equal(invoice.StatusPartiallyRefunded.String(), res.Invoice.PaymentStatus)
		s.Equal("1399.93", res.Invoice.TotalAmount)
		s.Equal("1259.94", res.Invoice.Discount)
		s.Equal("139.99", res.Invoice.NetTotal)
	})

	s.Run("pending invoice is left alone", func() {
		id := s.book(vipGuest, deluxeRoom, "2025-06-01", "2025-06-08")
		inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{
			BookingID:     id,
			PaymentMethod: invoice.MethodCash.String(),
		})
		s.Require().NoError(err)

		res, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)
		s.Nil(res.Invoice)

		stored, err := s.store.Invoices().FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(invoice.StatusPending, stored.PaymentStatus())
	})
}

// ================================================================================
// Invoices
// ================================================================================

func (s *CommandsTestSuite) TestIssueInvoice() {
	s.Run("bills nights at the room rate", func() {
		id := s.book(vipGuest, deluxeRoom, "2025-06-01", "2025-06-08")

		inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{
			BookingID:       id,
			DiscountPercent: 10,
			PaymentMethod:   invoice.MethodBankTransfer.String(),
		})
		s.Require().NoError(err)
		s.Equal("1399.93", inv.TotalAmount)
		s.Equal("139.99", inv.Discount)
		s.Equal("1259.94", inv.NetTotal)
		s.Equal(invoice.StatusPending.String(), inv.PaymentStatus)

		b, err := s.store.Bookings().FindByID(s.ctx, id)
		s.Require().NoError(err)
		s.Require().True(b.HasInvoice())
		s.Equal(inv.ID, b.Invoice().ID())
	})

	s.Run("unsupported payment method", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		_, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{BookingID: id, PaymentMethod: "Bitcoin"})
		s.Require().ErrorIs(err, errs.ErrUnsupportedPaymentMethod)
	})

	s.Run("discount above one hundred percent", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")

		_, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{
			BookingID:       id,
			DiscountPercent: 101,
			PaymentMethod:   invoice.MethodCash.String(),
		})
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidationFailed), "got %v", err)
	})

	s.Run("second invoice for the same booking", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		in := commands.IssueInvoiceInput{BookingID: id, PaymentMethod: invoice.MethodCash.String()}

		_, err := s.invoices.Issue(s.ctx, in)
		s.Require().NoError(err)
		_, err = s.invoices.Issue(s.ctx, in)
		s.Require().ErrorIs(err, errs.ErrInvoiceAlreadyIssued)
	})

	s.Run("cancelled booking", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		_, err := s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)

		_, err = s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{BookingID: id, PaymentMethod: invoice.MethodCash.String()})
		s.Require().ErrorIs(err, errs.ErrAlreadyCancelled)
	})
}

func (s *CommandsTestSuite) TestSettleInvoice() {
	s.Run("approved", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{BookingID: id, PaymentMethod: invoice.MethodDebitCard.String()})
		s.Require().NoError(err)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req invoice.ChargeRequest) (bool, error) {
				s.Equal("199.98", req.Amount.StringFixed(2))
				s.Equal(invoice.MethodDebitCard, req.Method)
				return true, nil
			}).Times(1)

		got, err := s.invoices.Settle(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(invoice.StatusCompleted.String(), got.PaymentStatus)

		queued, err := s.store.Notifications().List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(queued, 2)
		s.Equal(shared.KindPaymentSettled, queued[1].Kind)
	})

	s.Run("declined", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{BookingID: id, PaymentMethod: invoice.MethodCreditCard.String()})
		s.Require().NoError(err)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

		_, err = s.invoices.Settle(s.ctx, inv.ID)
		s.Require().ErrorIs(err, errs.ErrPaymentDeclined)

		stored, err := s.store.Invoices().FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(invoice.StatusPending, stored.PaymentStatus())
	})

	s.Run("already settled", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		invID := s.issueAndSettle(id, 0)

		_, err := s.invoices.Settle(s.ctx, invID)
		s.Require().ErrorIs(err, errs.ErrInvoiceAlreadySettled)
	})

	s.Run("cancelled booking is never charged", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		inv, err := s.invoices.Issue(s.ctx, commands.IssueInvoiceInput{BookingID: id, PaymentMethod: invoice.MethodCreditCard.String()})
		s.Require().NoError(err)
		_, err = s.bookings.Cancel(s.ctx, id)
		s.Require().NoError(err)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)

		_, err = s.invoices.Settle(s.ctx, inv.ID)
		s.Require().ErrorIs(err, errs.ErrAlreadyCancelled)

		stored, err := s.store.Invoices().FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(invoice.StatusPending, stored.PaymentStatus())
	})

	s.Run("unknown invoice", func() {
		_, err := s.invoices.Settle(s.ctx, 7)
		s.Require().ErrorIs(err, errs.ErrInvoiceNotFound)
	})
}

// ================================================================================
// Loyalty
// ================================================================================

func (s *CommandsTestSuite) TestLoyalty() {
	s.Run("enroll sets expiry from the clock", func() {
		got, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest, Points: 700})
		s.Require().NoError(err)
		s.Equal(700, got.Balance)
		s.Equal("Silver", got.Tier)
		s.Equal("2026-06-01", got.Expiry)
	})

	s.Run("enroll twice", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest})
		s.Require().NoError(err)
		_, err = s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest})
		s.Require().ErrorIs(err, errs.ErrAlreadyEnrolled)
	})

	s.Run("enroll unknown guest", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: 99})
		s.Require().ErrorIs(err, errs.ErrGuestNotFound)
	})

	s.Run("redeem", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest, Points: 700})
		s.Require().NoError(err)

		res, err := s.loyalty.Redeem(s.ctx, regularGuest, 300)
		s.Require().NoError(err)
		s.Equal(400, res.Program.Balance)
		s.Equal("Reward for 300 points", res.Reward.Label)

		_, err = s.loyalty.Redeem(s.ctx, regularGuest, 2000)
		s.Require().ErrorIs(err, errs.ErrInsufficientPoints)

		p, err := s.store.Loyalty().FindByGuestID(s.ctx, regularGuest)
		s.Require().NoError(err)
		s.Equal(400, p.Balance())
	})

	s.Run("tier change updates the guest status", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest, Points: 900})
		s.Require().NoError(err)

		got, err := s.loyalty.Earn(s.ctx, regularGuest, 100)
		s.Require().NoError(err)
		s.Equal("Gold", got.Tier)

		g, err := s.store.Guests().FindByID(s.ctx, regularGuest)
		s.Require().NoError(err)
		s.Equal("Gold", g.LoyaltyStatus())
	})

	s.Run("vip status is kept", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: vipGuest, Points: 1500})
		s.Require().NoError(err)

		g, err := s.store.Guests().FindByID(s.ctx, vipGuest)
		s.Require().NoError(err)
		s.Equal("VIP", g.LoyaltyStatus())
	})

	s.Run("earn for stay", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-04")
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest, Points: 50})
		s.Require().NoError(err)

		got, err := s.loyalty.EarnForStay(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(350, got.Balance)
	})

	s.Run("stay is credited once", func() {
		id := s.book(regularGuest, standardRoom, "2025-06-01", "2025-06-03")
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest})
		s.Require().NoError(err)

		got, err := s.loyalty.EarnForStay(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(200, got.Balance)

		_, err = s.loyalty.EarnForStay(s.ctx, id)
		s.Require().ErrorIs(err, errs.ErrStayAlreadyCredited)

		p, err := s.store.Loyalty().FindByGuestID(s.ctx, regularGuest)
		s.Require().NoError(err)
		s.Equal(200, p.Balance())
		s.Equal([]int{id}, p.CreditedStays())
	})

	s.Run("negative earn", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest})
		s.Require().NoError(err)

		_, err = s.loyalty.Earn(s.ctx, regularGuest, -5)
		s.Require().ErrorIs(err, errs.ErrInvalidAmount)
	})

	s.Run("expired points cannot be redeemed", func() {
		_, err := s.loyalty.Enroll(s.ctx, commands.EnrollInput{GuestID: regularGuest, Points: 700})
		s.Require().NoError(err)

		s.clock.Add(366 * 24 * time.Hour)
		_, err = s.loyalty.Redeem(s.ctx, regularGuest, 100)
		s.Require().ErrorIs(err, errs.ErrLedgerExpired)
	})

	s.Run("no ledger", func() {
		_, err := s.loyalty.Redeem(s.ctx, regularGuest, 100)
		s.Require().ErrorIs(err, errs.ErrLedgerNotFound)
	})
}

// ================================================================================
// Services and feedback
// ================================================================================

func (s *CommandsTestSuite) TestServices() {
	s.Run("request defaults to pending", func() {
		req, err := s.services.Request(s.ctx, commands.RequestServiceInput{GuestID: vipGuest, ServiceType: "Room Service"})
		s.Require().NoError(err)
		s.Equal(service.StatusPending, req.Status())
		s.Equal("2025-06-01 10:00:00", req.RequestTime().String())
		s.False(req.IsPremium())
	})

	s.Run("premium request", func() {
		req, err := s.services.Request(s.ctx, commands.RequestServiceInput{
			GuestID:     vipGuest,
			ServiceType: "Spa Treatment",
			Status:      ptr.Of(service.StatusScheduled),
			Premium:     &service.PremiumDetails{Level: "Platinum"},
		})
		s.Require().NoError(err)
		s.Equal(service.StatusScheduled, req.Status())
		s.True(req.IsPremium())
	})

	s.Run("complete", func() {
		req, err := s.services.Request(s.ctx, commands.RequestServiceInput{GuestID: vipGuest, ServiceType: "Laundry"})
		s.Require().NoError(err)

		done, err := s.services.Complete(s.ctx, req.ID())
		s.Require().NoError(err)
		s.Equal(service.StatusCompleted, done.Status())
	})

	s.Run("complete unknown request", func() {
		_, err := s.services.Complete(s.ctx, 5)
		s.Require().ErrorIs(err, errs.ErrServiceRequestNotFound)
	})

	s.Run("missing service type", func() {
		_, err := s.services.Request(s.ctx, commands.RequestServiceInput{GuestID: vipGuest})
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidationFailed), "got %v", err)
	})

	s.Run("feedback", func() {
		f, err := s.services.SubmitFeedback(s.ctx, commands.SubmitFeedbackInput{GuestID: regularGuest, Rating: 4.5, Comments: "Great stay!"})
		s.Require().NoError(err)
		s.Equal("2025-06-01", f.Date().String())

		_, err = s.services.SubmitFeedback(s.ctx, commands.SubmitFeedbackInput{GuestID: regularGuest, Rating: 6})
		s.Require().ErrorIs(err, errs.ErrRatingOutOfRange)

		_, err = s.services.SubmitFeedback(s.ctx, commands.SubmitFeedbackInput{GuestID: regularGuest, Rating: 0})
		s.Require().ErrorIs(err, errs.ErrRatingOutOfRange)
	})
}
