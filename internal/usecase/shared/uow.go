package shared

import (
	"context"

	"royal-stay/internal/domain/booking"
	"royal-stay/internal/domain/feedback"
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/domain/loyalty"
	"royal-stay/internal/domain/room"
	"royal-stay/internal/domain/service"
)

// Store groups the repositories behind one handle so commands can touch several
// records in a single workflow. Entities are returned by pointer; mutating one
// and calling Update persists the change.
type Store interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Bookings() BookingRepository
	Invoices() InvoiceRepository
	Loyalty() LoyaltyRepository
	ServiceRequests() ServiceRequestRepository
	Feedback() FeedbackRepository
	Notifications() NotificationRepository
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	FindByNumber(ctx context.Context, number int) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
	FindByID(ctx context.Context, id int) (*guest.Guest, error)
	List(ctx context.Context) ([]*guest.Guest, error)
}

type BookingRepository interface {
	NextID(ctx context.Context) int
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id int) (*booking.Booking, error)
	ListByGuest(ctx context.Context, guestID int) ([]*booking.Booking, error)
}

type InvoiceRepository interface {
	NextID(ctx context.Context) int
	Create(ctx context.Context, inv *invoice.Invoice) error
	Update(ctx context.Context, inv *invoice.Invoice) error
	FindByID(ctx context.Context, id int) (*invoice.Invoice, error)
}

type LoyaltyRepository interface {
	Create(ctx context.Context, p *loyalty.Program) error
	Update(ctx context.Context, p *loyalty.Program) error
	FindByGuestID(ctx context.Context, guestID int) (*loyalty.Program, error)
}

type ServiceRequestRepository interface {
	NextID(ctx context.Context) int
	Create(ctx context.Context, r *service.Request) error
	Update(ctx context.Context, r *service.Request) error
	FindByID(ctx context.Context, id int) (*service.Request, error)
	ListByGuest(ctx context.Context, guestID int) ([]*service.Request, error)
}

type FeedbackRepository interface {
	NextID(ctx context.Context) int
	Create(ctx context.Context, f *feedback.Feedback) error
	ListByGuest(ctx context.Context, guestID int) ([]*feedback.Feedback, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, n Notification) error
	List(ctx context.Context) ([]Notification, error)
}
