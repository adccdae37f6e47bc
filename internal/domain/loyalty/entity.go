package loyalty

import (
	"fmt"
	"slices"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInsufficientPoints  = errs.ErrInsufficientPoints
	ErrInvalidAmount       = errs.ErrInvalidAmount
	ErrStayAlreadyCredited = errs.ErrStayAlreadyCredited
)

// Reward is the opaque descriptor handed back by a successful redemption.
type Reward struct {
	Label string
}

func (r Reward) String() string { return r.Label }

type Redemption struct {
	ID     uuid.UUID
	Points int
	Reward Reward
}

// Program is one guest's points ledger. Tier and rewards are derived from the
// balance after every mutation, so they never drift from it.
type Program struct {
	guestID     int
	balance     int
	baseRewards []string
	rewards     []string
	tier        Tier
	expiry      calendar.Date
	rules       []TierRule
	redemptions []Redemption
	stays       []int
}

func NewProgram(guestID, points int, baseRewards []string, expiry string) (*Program, error) {
	if points < 0 {
		return nil, errs.Newf(ErrInvalidAmount, "opening balance %d", points)
	}
	exp, err := calendar.ParseDate(expiry)
	if err != nil {
		return nil, err
	}

	p := &Program{
		guestID:     guestID,
		balance:     points,
		baseRewards: slices.Clone(baseRewards),
		expiry:      exp,
		rules:       DefaultRules,
	}
	p.recompute()
	return p, nil
}

// WithRules replaces the tier table; rules must be sorted by MinPoints ascending.
func (p *Program) WithRules(rules []TierRule) *Program {
	p.rules = rules
	p.recompute()
	return p
}

func (p *Program) Earn(points int) error {
	if points < 0 {
		return errs.Newf(ErrInvalidAmount, "earn %d", points)
	}
	p.balance += points
	p.recompute()
	return nil
}

// CreditStay earns points for a booking at most once per booking.
func (p *Program) CreditStay(bookingID, points int) error {
	if slices.Contains(p.stays, bookingID) {
		return errs.Newf(ErrStayAlreadyCredited, "booking #%d", bookingID)
	}
	if err := p.Earn(points); err != nil {
		return err
	}
	p.stays = append(p.stays, bookingID)
	return nil
}

// Redeem leaves the balance untouched on any error.
func (p *Program) Redeem(points int) (Reward, error) {
	if points < 0 {
		return Reward{}, errs.Newf(ErrInvalidAmount, "redeem %d", points)
	}
	if points > p.balance {
		return Reward{}, errs.Newf(ErrInsufficientPoints, "redeem %d with balance %d", points, p.balance)
	}

	reward := Reward{Label: fmt.Sprintf("Reward for %d points", points)}
	p.balance -= points
	p.redemptions = append(p.redemptions, Redemption{
		ID:     uuid.New(),
		Points: points,
		Reward: reward,
	})
	p.recompute()
	return reward, nil
}

func (p *Program) IsExpired(asOf calendar.Date) bool {
	return asOf.After(p.expiry)
}

func (p *Program) SetExpiry(date string) error {
	exp, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}
	p.expiry = exp
	return nil
}

func (p *Program) recompute() {
	tier, unlocked := TierFor(p.rules, p.balance)
	p.tier = tier

	rewards := make([]string, 0, len(p.baseRewards)+len(unlocked))
	for _, r := range append(slices.Clone(p.baseRewards), unlocked...) {
		if !slices.Contains(rewards, r) {
			rewards = append(rewards, r)
		}
	}
	p.rewards = rewards
}

func (p *Program) GuestID() int              { return p.guestID }
func (p *Program) Balance() int              { return p.balance }
func (p *Program) Tier() Tier                { return p.tier }
func (p *Program) Expiry() calendar.Date     { return p.expiry }
func (p *Program) Rewards() []string         { return slices.Clone(p.rewards) }
func (p *Program) Redemptions() []Redemption { return slices.Clone(p.redemptions) }
func (p *Program) CreditedStays() []int      { return slices.Clone(p.stays) }
