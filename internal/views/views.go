// Package views builds per-user projections joining session state against
// the room catalog. All builders are pure.
package views

import (
	"github.com/utsavdotdev/basobas/internal/models"
)

// BookingDetail pairs a booking with the room it refers to.
type BookingDetail struct {
	Booking models.Booking `json:"booking"`
	Room    models.Room    `json:"room"`
}

// FavoriteRooms returns the rooms whose id is in favoriteIDs, preserving the
// order of the room collection.
func FavoriteRooms(rooms []models.Room, favoriteIDs []string) []models.Room {
	wanted := make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		wanted[id] = struct{}{}
	}

	out := make([]models.Room, 0, len(favoriteIDs))
	for _, room := range rooms {
		if _, ok := wanted[room.ID]; ok {
			out = append(out, room)
		}
	}
	return out
}

// BookingsForUser returns the bookings belonging to userID joined with their
// rooms. A booking whose room cannot be found is silently dropped; dangling
// references are recoverable data, not an error.
func BookingsForUser(bookings []models.Booking, rooms []models.Room, userID string) []BookingDetail {
	byID := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	out := make([]BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		if booking.UserID != userID {
			continue
		}
		room, ok := byID[booking.RoomID]
		if !ok {
			continue
		}
		out = append(out, BookingDetail{Booking: booking, Room: room})
	}
	return out
}
