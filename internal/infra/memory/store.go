package memory

import (
	"log/slog"

	"royal-stay/internal/usecase/shared"
)

type Store struct {
	rooms         *RoomRepository
	guests        *GuestRepository
	bookings      *BookingRepository
	invoices      *InvoiceRepository
	loyalty       *LoyaltyRepository
	services      *ServiceRequestRepository
	feedback      *FeedbackRepository
	notifications *NotificationRepository
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		rooms:         NewRoomRepository(logger),
		guests:        NewGuestRepository(logger),
		bookings:      NewBookingRepository(logger),
		invoices:      NewInvoiceRepository(logger),
		loyalty:       NewLoyaltyRepository(logger),
		services:      NewServiceRequestRepository(logger),
		feedback:      NewFeedbackRepository(logger),
		notifications: NewNotificationRepository(),
	}
}

var _ shared.Store = (*Store)(nil)

func (s *Store) Rooms() shared.RoomRepository                     { return s.rooms }
func (s *Store) Guests() shared.GuestRepository                   { return s.guests }
func (s *Store) Bookings() shared.BookingRepository               { return s.bookings }
func (s *Store) Invoices() shared.InvoiceRepository               { return s.invoices }
func (s *Store) Loyalty() shared.LoyaltyRepository                { return s.loyalty }
func (s *Store) ServiceRequests() shared.ServiceRequestRepository { return s.services }
func (s *Store) Feedback() shared.FeedbackRepository              { return s.feedback }
func (s *Store) Notifications() shared.NotificationRepository     { return s.notifications }
