package queries

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/room"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/usecase/readmodel"
	"royal-stay/internal/usecase/shared"
)

// RoomFilter narrows FindAvailable. Zero values match every room.
type RoomFilter struct {
	Type    room.Kind
	Amenity string
}

func (f RoomFilter) matches(r *room.Room) bool {
	if f.Type != "" && r.Kind() != f.Type {
		return false
	}
	if f.Amenity != "" && !r.HasAmenity(f.Amenity) {
		return false
	}
	return true
}

type RoomQueries interface {
	FindAvailable(ctx context.Context, filter RoomFilter) ([]*readmodel.RoomRM, error)
	Get(ctx context.Context, number int) (*readmodel.RoomRM, error)
}

type roomQueriesImpl struct {
	store  shared.Store
	logger *slog.Logger
}

func NewRoomQueries(store shared.Store, logger *slog.Logger) RoomQueries {
	return &roomQueriesImpl{store: store, logger: logger}
}

func (q *roomQueriesImpl) FindAvailable(ctx context.Context, filter RoomFilter) ([]*readmodel.RoomRM, error) {
	rooms, err := q.store.Rooms().List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	matched := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsAvailable() && filter.matches(r) {
			matched = append(matched, r)
		}
	}

	q.logger.DebugContext(ctx, "Available rooms searched",
		slog.String("type", string(filter.Type)),
		slog.String("amenity", filter.Amenity),
		slog.Int("matched", len(matched)),
	)
	return readmodel.FromRooms(matched)
}

func (q *roomQueriesImpl) Get(ctx context.Context, number int) (*readmodel.RoomRM, error) {
	r, err := q.store.Rooms().FindByNumber(ctx, number)
	if err != nil {
		return nil, notFound(err, errs.ErrRoomNotFound, "room %d", number)
	}
	return readmodel.FromRoom(r)
}
