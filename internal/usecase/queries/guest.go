package queries

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type GuestHistory struct {
	Guest           *readmodel.GuestRM
	Bookings        []*readmodel.BookingRM
	ServiceRequests []*readmodel.ServiceRequestRM
	Feedback        []*readmodel.FeedbackRM
}

type LoyaltyView struct {
	*readmodel.LoyaltyRM
	Expired bool
}

type GuestQueries interface {
	Get(ctx context.Context, guestID int) (*readmodel.GuestRM, error)
	History(ctx context.Context, guestID int) (*GuestHistory, error)
	TotalSpent(ctx context.Context, guestID int) (decimal.Decimal, error)
	Loyalty(ctx context.Context, guestID int) (*LoyaltyView, error)
}

type guestQueriesImpl struct {
	store  shared.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewGuestQueries(store shared.Store, clk clock.Clock, logger *slog.Logger) GuestQueries {
	return &guestQueriesImpl{store: store, clock: clk, logger: logger}
}

func (q *guestQueriesImpl) Get(ctx context.Context, guestID int) (*readmodel.GuestRM, error) {
	g, err := q.store.Guests().FindByID(ctx, guestID)
	if err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", guestID)
	}
	return readmodel.FromGuest(g)
}

// History returns the guest's reservations in the order they were made, followed by
// the service requests and feedback on file.
func (q *guestQueriesImpl) History(ctx context.Context, guestID int) (*GuestHistory, error) {
	g, err := q.store.Guests().FindByID(ctx, guestID)
	if err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", guestID)
	}

	out := &GuestHistory{}
	if out.Guest, err = readmodel.FromGuest(g); err != nil {
		return nil, err
	}
	if out.Bookings, err = readmodel.FromBookings(g.Reservations()); err != nil {
		return nil, err
	}

	requests, err := q.store.ServiceRequests().ListByGuest(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list service requests")
	}
	for _, r := range requests {
		rm, err := readmodel.FromServiceRequest(r)
		if err != nil {
			return nil, err
		}
		out.ServiceRequests = append(out.ServiceRequests, rm)
	}

	reviews, err := q.store.Feedback().ListByGuest(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list feedback")
	}
	for _, f := range reviews {
		rm, err := readmodel.FromFeedback(f)
		if err != nil {
			return nil, err
		}
		out.Feedback = append(out.Feedback, rm)
	}

	return out, nil
}

// TotalSpent prices every reservation at its room's current nightly rate.
func (q *guestQueriesImpl) TotalSpent(ctx context.Context, guestID int) (decimal.Decimal, error) {
	g, err := q.store.Guests().FindByID(ctx, guestID)
	if err != nil {
		return decimal.Zero, notFound(err, errs.ErrGuestNotFound, "guest %d", guestID)
	}
	rooms, err := q.store.Rooms().List(ctx)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to list rooms")
	}

	prices := make(map[int]decimal.Decimal, len(rooms))
	for _, r := range rooms {
		prices[r.Number()] = r.PricePerNight()
	}
	return g.TotalSpent(prices), nil
}

func (q *guestQueriesImpl) Loyalty(ctx context.Context, guestID int) (*LoyaltyView, error) {
	p, err := q.store.Loyalty().FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, notFound(err, errs.ErrLedgerNotFound, "guest %d", guestID)
	}
	rm, err := readmodel.FromLoyalty(p)
	if err != nil {
		return nil, err
	}
	return &LoyaltyView{
		LoyaltyRM: rm,
		Expired:   p.IsExpired(calendar.DateOf(q.clock.Now())),
	}, nil
}
