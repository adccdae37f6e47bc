//go:build unit

package storetest

import (
	"context"
	"testing"

	"royal-stay/internal/domain/guest"
	"royal-stay/internal/domain/room"
	"royal-stay/internal/infra/memory"
	"royal-stay/internal/pkg/logger"
	"royal-stay/tests/common/builder"

	"github.com/stretchr/testify/require"
)

func NewStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStore(logger.Discard())
}

func CreateTestRoom(t *testing.T, store *memory.Store, b *builder.RoomBuilder) *room.Room {
	t.Helper()

	r := b.BuildDomain()
	require.NoError(t, store.Rooms().Create(context.Background(), r))
	return r
}

func CreateTestGuest(t *testing.T, store *memory.Store, b *builder.GuestBuilder) *guest.Guest {
	t.Helper()

	g := b.BuildDomain()
	require.NoError(t, store.Guests().Create(context.Background(), g))
	return g
}

// SeedReferenceData registers the standard and deluxe rooms plus one regular and one VIP guest.
func SeedReferenceData(t *testing.T, store *memory.Store) {
	t.Helper()

	CreateTestRoom(t, store, builder.NewRoomBuilder())
	CreateTestRoom(t, store, builder.NewRoomBuilder().AsDeluxe())
	CreateTestGuest(t, store, builder.NewGuestBuilder())
	CreateTestGuest(t, store, builder.NewGuestBuilder().AsVIP())
}
