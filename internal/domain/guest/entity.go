package guest

import (
	"slices"

	"royal-stay/internal/domain/booking"

	"github.com/shopspring/decimal"
)

const (
	StatusBasic = "Basic"
	StatusVIP   = "VIP"
)

type Kind int

const (
	KindRegular Kind = iota
	KindVIP
)

func (k Kind) String() string {
	switch k {
	case KindVIP:
		return "VIP"
	default:
		return "Regular"
	}
}

// VIPPerks only exists on guests of KindVIP.
type VIPPerks struct {
	PersonalAssistant     bool
	PrivateTransportation bool
	DedicatedConcierge    bool
}

// Benefits lists the perks that are switched on, in a fixed order.
func (p VIPPerks) Benefits() []string {
	var out []string
	if p.PersonalAssistant {
		out = append(out, "Personal Assistant")
	}
	if p.PrivateTransportation {
		out = append(out, "Private Transportation")
	}
	if p.DedicatedConcierge {
		out = append(out, "Dedicated Concierge")
	}
	return out
}

type Guest struct {
	id            int
	name          string
	contactInfo   string
	loyaltyStatus string
	kind          Kind
	vip           *VIPPerks
	reservations  []*booking.Booking
}

// NewGuest defaults an empty loyalty status to Basic.
func NewGuest(id int, name, contactInfo, loyaltyStatus string) *Guest {
	if loyaltyStatus == "" {
		loyaltyStatus = StatusBasic
	}
	return &Guest{
		id:            id,
		name:          name,
		contactInfo:   contactInfo,
		loyaltyStatus: loyaltyStatus,
		kind:          KindRegular,
	}
}

func NewVIPGuest(id int, name, contactInfo string, perks VIPPerks) *Guest {
	g := NewGuest(id, name, contactInfo, StatusVIP)
	g.kind = KindVIP
	g.vip = &perks
	return g
}

func (g *Guest) AddReservation(b *booking.Booking) {
	g.reservations = append(g.reservations, b)
}

func (g *Guest) UpgradeLoyaltyStatus(status string) {
	g.loyaltyStatus = status
}

// TotalSpent sums nightly price times nights over the history, skipping rooms
// without a known price, rounded to cents.
func (g *Guest) TotalSpent(roomPrices map[int]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range g.reservations {
		price, ok := roomPrices[b.RoomNumber()]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(b.Duration()))))
	}
	return total.Round(2)
}

func (g *Guest) VIP() (VIPPerks, bool) {
	if g.vip == nil {
		return VIPPerks{}, false
	}
	return *g.vip, true
}

func (g *Guest) IsVIP() bool { return g.kind == KindVIP }

func (g *Guest) ID() int                          { return g.id }
func (g *Guest) Name() string                     { return g.name }
func (g *Guest) ContactInfo() string              { return g.contactInfo }
func (g *Guest) LoyaltyStatus() string            { return g.loyaltyStatus }
func (g *Guest) Kind() Kind                       { return g.kind }
func (g *Guest) Reservations() []*booking.Booking { return slices.Clone(g.reservations) }
