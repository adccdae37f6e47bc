package commands

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/domain/loyalty"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"
)

type RedeemResult struct {
	Reward  loyalty.Reward
	Program *readmodel.LoyaltyRM
}

type LoyaltyCommands interface {
	Enroll(ctx context.Context, in EnrollInput) (*readmodel.LoyaltyRM, error)
	Earn(ctx context.Context, guestID, points int) (*readmodel.LoyaltyRM, error)
	EarnForStay(ctx context.Context, bookingID int) (*readmodel.LoyaltyRM, error)
	Redeem(ctx context.Context, guestID, points int) (*RedeemResult, error)
}

type loyaltyCommandsImpl struct {
	store  shared.Store
	clock  clock.Clock
	cfg    config.LoyaltyConfig
	logger *slog.Logger
}

func NewLoyaltyCommands(store shared.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) LoyaltyCommands {
	return &loyaltyCommandsImpl{
		store:  store,
		clock:  clk,
		cfg:    cfg.Loyalty,
		logger: logger,
	}
}

func (c *loyaltyCommandsImpl) today() calendar.Date {
	return calendar.DateOf(c.clock.Now())
}

func (c *loyaltyCommandsImpl) Enroll(ctx context.Context, in EnrollInput) (*readmodel.LoyaltyRM, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := c.store.Guests().FindByID(ctx, in.GuestID); err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", in.GuestID)
	}
	if _, err := c.store.Loyalty().FindByGuestID(ctx, in.GuestID); err == nil {
		return nil, errs.Newf(errs.ErrAlreadyEnrolled, "guest %d", in.GuestID)
	}

	expiry := c.today().AddDays(c.cfg.ExpiryDays)
	p, err := loyalty.NewProgram(in.GuestID, in.Points, in.BaseRewards, expiry.String())
	if err != nil {
		return nil, err
	}
	if err := c.store.Loyalty().Create(ctx, p); err != nil {
		return nil, errs.Wrap(err, "failed to store loyalty program")
	}
	if err := c.syncGuestStatus(ctx, p); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Guest enrolled",
		slog.Int("guest_id", p.GuestID()),
		slog.Int("balance", p.Balance()),
		slog.String("tier", p.Tier().String()),
		slog.String("expiry", p.Expiry().String()),
	)

	return readmodel.FromLoyalty(p)
}

func (c *loyaltyCommandsImpl) Earn(ctx context.Context, guestID, points int) (*readmodel.LoyaltyRM, error) {
	p, err := c.program(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := p.Earn(points); err != nil {
		return nil, err
	}
	if err := c.save(ctx, p); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Points earned",
		slog.Int("guest_id", guestID),
		slog.Int("points", points),
		slog.Int("balance", p.Balance()),
	)
	return readmodel.FromLoyalty(p)
}

// EarnForStay credits PointsPerNight for each night of a booking to its guest.
// Each booking is credited once.
func (c *loyaltyCommandsImpl) EarnForStay(ctx context.Context, bookingID int) (*readmodel.LoyaltyRM, error) {
	b, err := c.store.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound, "booking %d", bookingID)
	}
	if b.IsCancelled() {
		return nil, errs.Newf(errs.ErrAlreadyCancelled, "booking #%d earns no points", b.ID())
	}

	p, err := c.program(ctx, b.GuestID())
	if err != nil {
		return nil, err
	}
	points := b.Duration() * c.cfg.PointsPerNight
	if err := p.CreditStay(b.ID(), points); err != nil {
		return nil, err
	}
	if err := c.save(ctx, p); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Stay credited",
		slog.Int("guest_id", p.GuestID()),
		slog.Int("booking_id", b.ID()),
		slog.Int("points", points),
		slog.Int("balance", p.Balance()),
	)
	return readmodel.FromLoyalty(p)
}

func (c *loyaltyCommandsImpl) Redeem(ctx context.Context, guestID, points int) (*RedeemResult, error) {
	p, err := c.program(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if p.IsExpired(c.today()) {
		return nil, errs.Newf(errs.ErrLedgerExpired, "guest %d, expired %s", guestID, p.Expiry())
	}

	reward, err := p.Redeem(points)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, p); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Points redeemed",
		slog.Int("guest_id", guestID),
		slog.Int("points", points),
		slog.Int("balance", p.Balance()),
		slog.String("reward", reward.String()),
	)

	view, err := readmodel.FromLoyalty(p)
	if err != nil {
		return nil, err
	}
	return &RedeemResult{Reward: reward, Program: view}, nil
}

func (c *loyaltyCommandsImpl) program(ctx context.Context, guestID int) (*loyalty.Program, error) {
	p, err := c.store.Loyalty().FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, notFound(err, errs.ErrLedgerNotFound, "guest %d", guestID)
	}
	return p, nil
}

func (c *loyaltyCommandsImpl) save(ctx context.Context, p *loyalty.Program) error {
	if err := c.store.Loyalty().Update(ctx, p); err != nil {
		return errs.Wrap(err, "failed to store loyalty program")
	}
	return c.syncGuestStatus(ctx, p)
}

// syncGuestStatus mirrors the program tier onto the guest's loyalty status.
// VIP guests keep their VIP status regardless of tier.
func (c *loyaltyCommandsImpl) syncGuestStatus(ctx context.Context, p *loyalty.Program) error {
	g, err := c.store.Guests().FindByID(ctx, p.GuestID())
	if err != nil {
		return notFound(err, errs.ErrGuestNotFound, "guest %d", p.GuestID())
	}
	if g.IsVIP() || g.LoyaltyStatus() == p.Tier().String() {
		return nil
	}
	g.UpgradeLoyaltyStatus(p.Tier().String())
	if err := c.store.Guests().Update(ctx, g); err != nil {
		return errs.Wrap(err, "failed to update guest loyalty status")
	}
	return nil
}
