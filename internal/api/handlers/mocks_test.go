package handlers_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/search"
	"github.com/utsavdotdev/basobas/internal/views"
)

// --- Mocks ---

// MockRoomService
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) AllRooms() []models.Room {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Room)
}

func (m *MockRoomService) FindRoomByID(id string) (*models.Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) SearchRooms(f search.Filter) []models.Room {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Room)
}

func (m *MockRoomService) AddRoom(landlord models.Landlord, title, description, location string, price float64, roomType models.RoomType, facilities models.Facilities, images []string) (*models.Room, error) {
	args := m.Called(landlord, title, description, location, price, roomType, facilities, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) Features() []models.Feature {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Feature)
}

// MockSessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CurrentUser() *models.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.User)
}

func (m *MockSessionService) Login(role models.Role) (*models.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockSessionService) Logout() error {
	return m.Called().Error(0)
}

func (m *MockSessionService) VerifyPhone(phone string) error {
	return m.Called(phone).Error(0)
}

func (m *MockSessionService) Favorites() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockSessionService) AddFavorite(roomID string) error {
	return m.Called(roomID).Error(0)
}

func (m *MockSessionService) RemoveFavorite(roomID string) error {
	return m.Called(roomID).Error(0)
}

func (m *MockSessionService) PostedRooms() []models.Room {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Room)
}

func (m *MockSessionService) AddRoom(room models.Room) error {
	return m.Called(room).Error(0)
}

func (m *MockSessionService) Bookings() []models.Booking {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Booking)
}

func (m *MockSessionService) AddBooking(roomID, userID, checkIn, checkOut string, status models.BookingStatus) (*models.Booking, error) {
	args := m.Called(roomID, userID, checkIn, checkOut, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockSessionService) CancelBooking(bookingID string) error {
	return m.Called(bookingID).Error(0)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) FavoriteRooms() []models.Room {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Room)
}

func (m *MockProfileService) BookingDetails() []views.BookingDetail {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]views.BookingDetail)
}

// MockVerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) SendCode(phone string) error {
	return m.Called(phone).Error(0)
}

func (m *MockVerificationService) VerifyCode(phone, code string) error {
	return m.Called(phone, code).Error(0)
}
