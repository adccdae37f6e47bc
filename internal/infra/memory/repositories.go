package memory

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/booking"
	"royal-stay/internal/domain/feedback"
	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/domain/loyalty"
	"royal-stay/internal/domain/room"
	"royal-stay/internal/domain/service"
	"royal-stay/internal/usecase/shared"
)

type RoomRepository struct{ t *table[*room.Room] }

func NewRoomRepository(logger *slog.Logger) *RoomRepository {
	return &RoomRepository{t: newTable[*room.Room]("room", logger)}
}

func (r *RoomRepository) Create(_ context.Context, rm *room.Room) error {
	return r.t.insert(rm.Number(), rm)
}

func (r *RoomRepository) Update(_ context.Context, rm *room.Room) error {
	return r.t.update(rm.Number(), rm)
}

func (r *RoomRepository) FindByNumber(_ context.Context, number int) (*room.Room, error) {
	return r.t.get(number)
}

func (r *RoomRepository) List(_ context.Context) ([]*room.Room, error) {
	return r.t.all(), nil
}

type GuestRepository struct{ t *table[*guest.Guest] }

func NewGuestRepository(logger *slog.Logger) *GuestRepository {
	return &GuestRepository{t: newTable[*guest.Guest]("guest", logger)}
}

func (r *GuestRepository) Create(_ context.Context, g *guest.Guest) error {
	return r.t.insert(g.ID(), g)
}

func (r *GuestRepository) Update(_ context.Context, g *guest.Guest) error {
	return r.t.update(g.ID(), g)
}

func (r *GuestRepository) FindByID(_ context.Context, id int) (*guest.Guest, error) {
	return r.t.get(id)
}

func (r *GuestRepository) List(_ context.Context) ([]*guest.Guest, error) {
	return r.t.all(), nil
}

type BookingRepository struct{ t *table[*booking.Booking] }

func NewBookingRepository(logger *slog.Logger) *BookingRepository {
	return &BookingRepository{t: newTable[*booking.Booking]("booking", logger)}
}

func (r *BookingRepository) NextID(_ context.Context) int { return r.t.nextKey() }

func (r *BookingRepository) Create(_ context.Context, b *booking.Booking) error {
	return r.t.insert(b.ID(), b)
}

func (r *BookingRepository) Update(_ context.Context, b *booking.Booking) error {
	return r.t.update(b.ID(), b)
}

func (r *BookingRepository) FindByID(_ context.Context, id int) (*booking.Booking, error) {
	return r.t.get(id)
}

func (r *BookingRepository) ListByGuest(_ context.Context, guestID int) ([]*booking.Booking, error) {
	return r.t.filter(func(b *booking.Booking) bool { return b.GuestID() == guestID }), nil
}

type InvoiceRepository struct{ t *table[*invoice.Invoice] }

func NewInvoiceRepository(logger *slog.Logger) *InvoiceRepository {
	return &InvoiceRepository{t: newTable[*invoice.Invoice]("invoice", logger)}
}

func (r *InvoiceRepository) NextID(_ context.Context) int { return r.t.nextKey() }

func (r *InvoiceRepository) Create(_ context.Context, inv *invoice.Invoice) error {
	return r.t.insert(inv.ID(), inv)
}

func (r *InvoiceRepository) Update(_ context.Context, inv *invoice.Invoice) error {
	return r.t.update(inv.ID(), inv)
}

func (r *InvoiceRepository) FindByID(_ context.Context, id int) (*invoice.Invoice, error) {
	return r.t.get(id)
}

// LoyaltyRepository keeps one ledger per guest, keyed by guest id.
type LoyaltyRepository struct{ t *table[*loyalty.Program] }

func NewLoyaltyRepository(logger *slog.Logger) *LoyaltyRepository {
	return &LoyaltyRepository{t: newTable[*loyalty.Program]("loyalty program", logger)}
}

func (r *LoyaltyRepository) Create(_ context.Context, p *loyalty.Program) error {
	return r.t.insert(p.GuestID(), p)
}

func (r *LoyaltyRepository) Update(_ context.Context, p *loyalty.Program) error {
	return r.t.update(p.GuestID(), p)
}

func (r *LoyaltyRepository) FindByGuestID(_ context.Context, guestID int) (*loyalty.Program, error) {
	return r.t.get(guestID)
}

type ServiceRequestRepository struct{ t *table[*service.Request] }

func NewServiceRequestRepository(logger *slog.Logger) *ServiceRequestRepository {
	return &ServiceRequestRepository{t: newTable[*service.Request]("service request", logger)}
}

func (r *ServiceRequestRepository) NextID(_ context.Context) int { return r.t.nextKey() }

func (r *ServiceRequestRepository) Create(_ context.Context, req *service.Request) error {
	return r.t.insert(req.ID(), req)
}

func (r *ServiceRequestRepository) Update(_ context.Context, req *service.Request) error {
	return r.t.update(req.ID(), req)
}

func (r *ServiceRequestRepository) FindByID(_ context.Context, id int) (*service.Request, error) {
	return r.t.get(id)
}

func (r *ServiceRequestRepository) ListByGuest(_ context.Context, guestID int) ([]*service.Request, error) {
	return r.t.filter(func(req *service.Request) bool { return req.GuestID() == guestID }), nil
}

type FeedbackRepository struct{ t *table[*feedback.Feedback] }

func NewFeedbackRepository(logger *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{t: newTable[*feedback.Feedback]("feedback", logger)}
}

func (r *FeedbackRepository) NextID(_ context.Context) int { return r.t.nextKey() }

func (r *FeedbackRepository) Create(_ context.Context, f *feedback.Feedback) error {
	return r.t.insert(f.ID(), f)
}

func (r *FeedbackRepository) ListByGuest(_ context.Context, guestID int) ([]*feedback.Feedback, error) {
	return r.t.filter(func(f *feedback.Feedback) bool { return f.GuestID() == guestID }), nil
}

// NotificationRepository is an append-only outbox.
type NotificationRepository struct {
	jobs []shared.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(_ context.Context, n shared.Notification) error {
	r.jobs = append(r.jobs, n)
	return nil
}

func (r *NotificationRepository) List(_ context.Context) ([]shared.Notification, error) {
	out := make([]shared.Notification, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}
