//go:build unit

package builder

import (
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/room"

	"github.com/shopspring/decimal"
)

type GuestBuilder struct {
	ID            int
	Name          string
	ContactInfo   string
	LoyaltyStatus string
	Perks         *guest.VIPPerks
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:            1,
		Name:          "Ali AlKhaldi",
		ContactInfo:   "alice@email.com",
		LoyaltyStatus: "Silver",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *GuestBuilder) BuildDomain() *guest.Guest {
	if b.Perks != nil {
		return guest.NewVIPGuest(b.ID, b.Name, b.ContactInfo, *b.Perks)
	}
	return guest.NewGuest(b.ID, b.Name, b.ContactInfo, b.LoyaltyStatus)
}

// Fluent builder methods
func (b *GuestBuilder) WithID(id int) *GuestBuilder {
	b.ID = id
	return b
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

func (b *GuestBuilder) WithLoyaltyStatus(status string) *GuestBuilder {
	b.LoyaltyStatus = status
	return b
}

func (b *GuestBuilder) AsVIP() *GuestBuilder {
	b.ID = 2
	b.Name = "Rashid AlHashmi"
	b.ContactInfo = "bob@email.com"
	b.Perks = &guest.VIPPerks{
		PersonalAssistant:     true,
		PrivateTransportation: true,
	}
	return b
}

type RoomBuilder struct {
	Number    int
	Kind      room.Kind
	Price     string
	Amenities []string
	Deluxe    *room.DeluxeFeatures
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:    101,
		Kind:      room.KindStandard,
		Price:     "99.99",
		Amenities: []string{"WiFi"},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	price := decimal.RequireFromString(b.Price)
	var r *room.Room
	if b.Deluxe != nil {
		r = room.NewDeluxeRoom(b.Number, price, *b.Deluxe)
	} else {
		r = room.NewRoom(b.Number, b.Kind, price)
	}
	for _, a := range b.Amenities {
		r.AddAmenity(a)
	}
	return r
}

func (b *RoomBuilder) WithNumber(number int) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithPrice(price string) *RoomBuilder {
	b.Price = price
	return b
}

func (b *RoomBuilder) WithKind(kind room.Kind) *RoomBuilder {
	b.Kind = kind
	return b
}

func (b *RoomBuilder) WithAmenities(amenities ...string) *RoomBuilder {
	b.Amenities = amenities
	return b
}

func (b *RoomBuilder) AsDeluxe() *RoomBuilder {
	b.Number = 201
	b.Kind = room.KindDeluxe
	b.Price = "199.99"
	b.Deluxe = &room.DeluxeFeatures{View: "Ocean", Jacuzzi: true, BreakfastIncluded: true}
	return b
}
