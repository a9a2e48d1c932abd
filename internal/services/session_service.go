package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/store"
	"github.com/utsavdotdev/basobas/internal/utils"
)

// ISessionService defines the mutation contract over the persisted session
// state: the active user, the favorites set, user-posted rooms and bookings.
// Every mutation persists synchronously; subsequent reads see it immediately.
type ISessionService interface {
	CurrentUser() *models.User
	Login(role models.Role) (*models.User, error)
	Logout() error
	VerifyPhone(phone string) error

	Favorites() []string
	AddFavorite(roomID string) error
	RemoveFavorite(roomID string) error

	PostedRooms() []models.Room
	AddRoom(room models.Room) error

	Bookings() []models.Booking
	AddBooking(roomID, userID, checkIn, checkOut string, status models.BookingStatus) (*models.Booking, error)
	CancelBooking(bookingID string) error
}

// sessionService implements ISessionService over a local state store. State
// is held in memory and written through on every mutation. A mutex guards
// against overlapping handler calls; concurrent writers resolve as
// last-writer-wins, which matches the persisted-store contract.
type sessionService struct {
	mu sync.Mutex
	st *store.Store

	user        *models.User
	favorites   []string
	postedRooms []models.Room
	bookings    []models.Booking
}

// NewSessionService creates a session service rehydrated from the store.
// A missing or corrupt key falls back to its default; rehydration never fails
// on bad data.
func NewSessionService(st *store.Store) (ISessionService, error) {
	s := &sessionService{st: st}

	var user models.User
	found, err := st.Get(store.KeyUser, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if found {
		s.user = &user
	}

	if _, err := st.Get(store.KeyFavorites, &s.favorites); err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if _, err := st.Get(store.KeyPostedRooms, &s.postedRooms); err != nil {
		return nil, fmt.Errorf("failed to load posted rooms: %w", err)
	}
	if _, err := st.Get(store.KeyBookings, &s.bookings); err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return s, nil
}

// CurrentUser returns a copy of the active user, or nil when logged out.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login establishes a new session user with a fixed identity derived from
// the role. Any existing session user is overwritten. Verification always
// starts false.
func (s *sessionService) Login(role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role: %s", role)
	}

	user := models.User{
		ID:   utils.NewID("user"),
		Role: role,
	}
	switch role {
	case models.RoleTenant:
		user.Name = "Utsav Bhattarai"
		user.Email = "utsavdotdev@gmail.com"
		user.Avatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&q=80"
	case models.RoleLandlord:
		user.Name = "Roshan Acharaya"
		user.Email = "roshan@gmail.com"
		user.Avatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&q=80"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.st.Put(store.KeyUser, &user); err != nil {
		return nil, err
	}
	s.user = &user
	u := user
	return &u, nil
}

// Logout clears the active user. Favorites, posted rooms and bookings are
// device-scoped, not identity-scoped, and deliberately survive logout.
func (s *sessionService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.st.Delete(store.KeyUser); err != nil {
		return err
	}
	s.user = nil
	return nil
}

// VerifyPhone records the phone number and marks the user verified. With no
// active user this is a no-op. Verified is never reset to false here.
func (s *sessionService) VerifyPhone(phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	updated := *s.user
	updated.Verified = true
	updated.Phone = phone
	if err := s.st.Put(store.KeyUser, &updated); err != nil {
		return err
	}
	s.user = &updated
	return nil
}

// Favorites returns a copy of the favorited room ids.
func (s *sessionService) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// AddFavorite adds a room id to the favorites set. Adding an id that is
// already present is a no-op; favorites hold no duplicates.
func (s *sessionService) AddFavorite(roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.favorites {
		if id == roomID {
			return nil
		}
	}
	updated := append(append([]string{}, s.favorites...), roomID)
	if err := s.st.Put(store.KeyFavorites, updated); err != nil {
		return err
	}
	s.favorites = updated
	return nil
}

// RemoveFavorite removes a room id from the favorites set; removing an
// absent id is a no-op.
func (s *sessionService) RemoveFavorite(roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]string, 0, len(s.favorites))
	for _, id := range s.favorites {
		if id != roomID {
			updated = append(updated, id)
		}
	}
	if len(updated) == len(s.favorites) {
		return nil
	}
	if err := s.st.Put(store.KeyFavorites, updated); err != nil {
		return err
	}
	s.favorites = updated
	return nil
}

// PostedRooms returns a copy of the user-posted rooms in insertion order.
func (s *sessionService) PostedRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.postedRooms))
	copy(out, s.postedRooms)
	return out
}

// AddRoom appends a fully-formed room to the posted rooms. The caller is
// responsible for id uniqueness across the whole catalog.
func (s *sessionService) AddRoom(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append(append([]models.Room{}, s.postedRooms...), room)
	if err := s.st.Put(store.KeyPostedRooms, updated); err != nil {
		return err
	}
	s.postedRooms = updated
	return nil
}

// Bookings returns a copy of all booking records, including cancelled ones.
func (s *sessionService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AddBooking constructs a booking with a generated id and creation timestamp
// and appends it.
func (s *sessionService) AddBooking(roomID, userID, checkIn, checkOut string, status models.BookingStatus) (*models.Booking, error) {
	booking := models.Booking{
		ID:        utils.NewID("booking"),
		RoomID:    roomID,
		UserID:    userID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    status,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append(append([]models.Booking{}, s.bookings...), booking)
	if err := s.st.Put(store.KeyBookings, updated); err != nil {
		return nil, err
	}
	s.bookings = updated
	b := booking
	return &b, nil
}

// CancelBooking transitions the matching booking to cancelled. Cancelled is
// terminal: cancelling an unknown or already-cancelled booking is an
// idempotent no-op.
func (s *sessionService) CancelBooking(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	updated := make([]models.Booking, len(s.bookings))
	copy(updated, s.bookings)
	for i := range updated {
		if updated[i].ID == bookingID && !updated[i].Terminal() {
			updated[i].Status = models.BookingStatusCancelled
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.st.Put(store.KeyBookings, updated); err != nil {
		return err
	}
	s.bookings = updated
	return nil
}
