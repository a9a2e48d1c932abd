package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/search"
)

func newTestCatalog(t *testing.T) (IRoomService, ISessionService) {
	t.Helper()
	session := newTestSession(t)
	return NewRoomService(session), session
}

func TestRoomService_AllRoomsUnionOrder(t *testing.T) {
	rooms, session := newTestCatalog(t)

	assert.Len(t, rooms.AllRooms(), 6)

	require.NoError(t, session.AddRoom(models.Room{ID: "room_posted", Title: "Posted", Type: models.RoomTypeSingle}))

	all := rooms.AllRooms()
	require.Len(t, all, 7)
	// Posted rooms come after the seed catalog.
	assert.Equal(t, "room_posted", all[6].ID)
}

func TestRoomService_FindRoomByID(t *testing.T) {
	rooms, session := newTestCatalog(t)

	room, err := rooms.FindRoomByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Cozy Single Room", room.Title)

	_, err = rooms.FindRoomByID("nope")
	assert.True(t, errors.Is(err, ErrRoomNotFound))

	require.NoError(t, session.AddRoom(models.Room{ID: "room_posted", Title: "Posted"}))
	room, err = rooms.FindRoomByID("room_posted")
	require.NoError(t, err)
	assert.Equal(t, "Posted", room.Title)
}

func TestRoomService_SearchRoomsIncludesPosted(t *testing.T) {
	rooms, session := newTestCatalog(t)
	require.NoError(t, session.AddRoom(models.Room{
		ID: "room_posted", Title: "Lakeside Hut", Location: "Pokhara", Price: 300,
		Type: models.RoomTypeSingle, CreatedAt: "2026-08-01T00:00:00Z",
	}))

	f := search.DefaultFilter()
	f.Search = "lakeside"
	got := rooms.SearchRooms(f)
	require.Len(t, got, 1)
	assert.Equal(t, "room_posted", got[0].ID)
}

func TestRoomService_AddRoom(t *testing.T) {
	rooms, session := newTestCatalog(t)

	landlord := models.Landlord{ID: "user_l", Name: "Roshan Acharaya", Email: "roshan@gmail.com"}
	room, err := rooms.AddRoom(landlord, "City Room", "Small and bright.", "Kathmandu", 400,
		models.RoomTypeSingle, models.Facilities{Wifi: true}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.NotEmpty(t, room.CreatedAt)
	assert.NotNil(t, room.Images)
	assert.Equal(t, landlord, room.Landlord)

	require.Len(t, session.PostedRooms(), 1)

	found, err := rooms.FindRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "City Room", found.Title)
}

func TestRoomService_AddRoomValidation(t *testing.T) {
	rooms, _ := newTestCatalog(t)
	landlord := models.Landlord{ID: "user_l"}

	_, err := rooms.AddRoom(landlord, "", "", "Kathmandu", 400, models.RoomTypeSingle, models.Facilities{}, nil)
	assert.Error(t, err, "missing title")

	_, err = rooms.AddRoom(landlord, "Room", "", "", 400, models.RoomTypeSingle, models.Facilities{}, nil)
	assert.Error(t, err, "missing location")

	_, err = rooms.AddRoom(landlord, "Room", "", "Kathmandu", -1, models.RoomTypeSingle, models.Facilities{}, nil)
	assert.Error(t, err, "negative price")

	_, err = rooms.AddRoom(landlord, "Room", "", "Kathmandu", 400, models.RoomType("mansion"), models.Facilities{}, nil)
	assert.Error(t, err, "unknown type")
}

func TestRoomService_Features(t *testing.T) {
	rooms, _ := newTestCatalog(t)
	features := rooms.Features()
	require.Len(t, features, 4)
	assert.Equal(t, "Verified Listings", features[0].Title)
}
