package room

import (
	"slices"

	"royal-stay/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidNights = errs.ErrInvalidNights

type Kind string

const (
	KindStandard Kind = "Standard"
	KindSuite    Kind = "Suite"
	KindDeluxe   Kind = "Deluxe"
)

// DeluxeFeatures only exists on rooms of KindDeluxe.
type DeluxeFeatures struct {
	View              string
	Jacuzzi           bool
	BreakfastIncluded bool
}

type Room struct {
	number        int
	kind          Kind
	pricePerNight decimal.Decimal
	amenities     []string
	available     bool
	deluxe        *DeluxeFeatures
}

func NewRoom(number int, kind Kind, pricePerNight decimal.Decimal) *Room {
	return &Room{
		number:        number,
		kind:          kind,
		pricePerNight: pricePerNight,
		available:     true,
	}
}

func NewDeluxeRoom(number int, pricePerNight decimal.Decimal, features DeluxeFeatures) *Room {
	r := NewRoom(number, KindDeluxe, pricePerNight)
	r.deluxe = &features
	return r
}

func (r *Room) AddAmenity(amenity string) {
	if !r.HasAmenity(amenity) {
		r.amenities = append(r.amenities, amenity)
	}
}

func (r *Room) HasAmenity(amenity string) bool {
	return slices.Contains(r.amenities, amenity)
}

func (r *Room) CalculateTotalCost(nights int) (decimal.Decimal, error) {
	if nights <= 0 {
		return decimal.Zero, errs.Newf(ErrInvalidNights, "room %d: %d nights", r.number, nights)
	}
	return r.pricePerNight.Mul(decimal.NewFromInt(int64(nights))), nil
}

// Deluxe returns the deluxe features and whether the room has any.
func (r *Room) Deluxe() (DeluxeFeatures, bool) {
	if r.deluxe == nil {
		return DeluxeFeatures{}, false
	}
	return *r.deluxe, true
}

func (r *Room) IsDeluxe() bool { return r.deluxe != nil }

func (r *Room) SetAvailability(available bool) { r.available = available }

func (r *Room) Number() int                    { return r.number }
func (r *Room) Kind() Kind                     { return r.kind }
func (r *Room) PricePerNight() decimal.Decimal { return r.pricePerNight }
func (r *Room) Amenities() []string            { return slices.Clone(r.amenities) }
func (r *Room) IsAvailable() bool              { return r.available }
