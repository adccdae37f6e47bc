package readmodel

import (
	"royal-stay/internal/domain/booking"
	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/domain/feedback"
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/domain/loyalty"
	"royal-stay/internal/domain/room"
	"royal-stay/internal/domain/service"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/pkg/ptr"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Entity getters are copied onto same-named fields. Matching is case-sensitive
// so copier never reaches the entities' unexported fields.
var copyOpts = copier.Option{
	CaseSensitive: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: calendar.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(calendar.Date).String(), nil
			},
		},
		{
			SrcType: calendar.Timestamp{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(calendar.Timestamp).String(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: guest.KindRegular,
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(guest.Kind).String(), nil
			},
		},
	},
}

func FromBooking(b *booking.Booking) (*BookingRM, error) {
	rm := &BookingRM{}
	if err := copier.CopyWithOption(rm, b, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project booking")
	}
	if inv := b.Invoice(); inv != nil {
		rm.InvoiceID = ptr.Of(inv.ID())
	}
	return rm, nil
}

func FromBookings(bs []*booking.Booking) ([]*BookingRM, error) {
	out := make([]*BookingRM, 0, len(bs))
	for _, b := range bs {
		rm, err := FromBooking(b)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func FromInvoice(inv *invoice.Invoice) (*InvoiceRM, error) {
	rm := &InvoiceRM{}
	if err := copier.CopyWithOption(rm, inv, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project invoice")
	}
	return rm, nil
}

func FromGuest(g *guest.Guest) (*GuestRM, error) {
	rm := &GuestRM{}
	if err := copier.CopyWithOption(rm, g, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project guest")
	}
	if perks, ok := g.VIP(); ok {
		rm.VIPBenefits = perks.Benefits()
	}
	return rm, nil
}

func FromRoom(r *room.Room) (*RoomRM, error) {
	rm := &RoomRM{}
	if err := copier.CopyWithOption(rm, r, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project room")
	}
	return rm, nil
}

func FromRooms(rs []*room.Room) ([]*RoomRM, error) {
	out := make([]*RoomRM, 0, len(rs))
	for _, r := range rs {
		rm, err := FromRoom(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func FromLoyalty(p *loyalty.Program) (*LoyaltyRM, error) {
	rm := &LoyaltyRM{}
	if err := copier.CopyWithOption(rm, p, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project loyalty program")
	}
	return rm, nil
}

func FromServiceRequest(r *service.Request) (*ServiceRequestRM, error) {
	rm := &ServiceRequestRM{}
	if err := copier.CopyWithOption(rm, r, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project service request")
	}
	return rm, nil
}

func FromFeedback(f *feedback.Feedback) (*FeedbackRM, error) {
	rm := &FeedbackRM{}
	if err := copier.CopyWithOption(rm, f, copyOpts); err != nil {
		return nil, errs.Wrap(err, "project feedback")
	}
	return rm, nil
}
