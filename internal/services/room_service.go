package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/search"
	"github.com/utsavdotdev/basobas/internal/seed"
	"github.com/utsavdotdev/basobas/internal/utils"
)

// ErrRoomNotFound is returned when a room id matches nothing in the catalog.
var ErrRoomNotFound = errors.New("room not found")

// IRoomService defines catalog operations over the union of seed rooms and
// user-posted rooms.
type IRoomService interface {
	AllRooms() []models.Room
	FindRoomByID(id string) (*models.Room, error)
	SearchRooms(f search.Filter) []models.Room
	AddRoom(landlord models.Landlord, title, description, location string, price float64, roomType models.RoomType, facilities models.Facilities, images []string) (*models.Room, error)
	Features() []models.Feature
}

// roomService implements IRoomService.
type roomService struct {
	session ISessionService
}

// NewRoomService creates a new RoomService backed by the given session store.
func NewRoomService(session ISessionService) IRoomService {
	return &roomService{session: session}
}

// AllRooms returns the full catalog: seed rooms first, then user-posted
// rooms in insertion order. The ordering keeps id lookups deterministic.
func (s *roomService) AllRooms() []models.Room {
	return append(seed.Rooms(), s.session.PostedRooms()...)
}

// FindRoomByID looks a room up across the whole catalog.
func (s *roomService) FindRoomByID(id string) (*models.Room, error) {
	for _, room := range s.AllRooms() {
		if room.ID == id {
			r := room
			return &r, nil
		}
	}
	return nil, ErrRoomNotFound
}

// SearchRooms runs the filter/sort pipeline over the full catalog.
func (s *roomService) SearchRooms(f search.Filter) []models.Room {
	return search.Apply(s.AllRooms(), f)
}

// AddRoom validates and posts a new room on behalf of a landlord. The room
// gets a generated id, unique across the catalog, and a creation timestamp.
func (s *roomService) AddRoom(landlord models.Landlord, title, description, location string, price float64, roomType models.RoomType, facilities models.Facilities, images []string) (*models.Room, error) {
	if title == "" {
		return nil, fmt.Errorf("room title is required")
	}
	if location == "" {
		return nil, fmt.Errorf("room location is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("room price must not be negative")
	}
	if !roomType.Valid() {
		return nil, fmt.Errorf("unknown room type: %s", roomType)
	}

	id := utils.NewID("room")
	if _, err := s.FindRoomByID(id); err == nil {
		// A random collision is as good as impossible; fail loudly if the
		// id generator has been hooked into producing one.
		return nil, fmt.Errorf("room id %s already exists", id)
	}

	if images == nil {
		images = []string{}
	}
	room := models.Room{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
		Location:    location,
		Images:      images,
		Type:        roomType,
		Facilities:  facilities,
		Landlord:    landlord,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.session.AddRoom(room); err != nil {
		return nil, fmt.Errorf("failed to persist posted room: %w", err)
	}
	return &room, nil
}

// Features returns the home-surface marketing entries.
func (s *roomService) Features() []models.Feature {
	return seed.Features()
}
