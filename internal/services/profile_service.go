package services

import (
	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/views"
)

// IProfileService builds the per-user derived views for the profile surface.
type IProfileService interface {
	FavoriteRooms() []models.Room
	BookingDetails() []views.BookingDetail
}

// profileService implements IProfileService by joining session state with
// the room catalog.
type profileService struct {
	session ISessionService
	rooms   IRoomService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(session ISessionService, rooms IRoomService) IProfileService {
	return &profileService{session: session, rooms: rooms}
}

// FavoriteRooms returns the favorited rooms in catalog order.
func (s *profileService) FavoriteRooms() []models.Room {
	return views.FavoriteRooms(s.rooms.AllRooms(), s.session.Favorites())
}

// BookingDetails returns the current user's bookings joined with their
// rooms. With no active user the view is empty.
func (s *profileService) BookingDetails() []views.BookingDetail {
	user := s.session.CurrentUser()
	if user == nil {
		return []views.BookingDetail{}
	}
	return views.BookingsForUser(s.session.Bookings(), s.rooms.AllRooms(), user.ID)
}
