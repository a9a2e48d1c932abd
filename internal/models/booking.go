package models

// BookingStatus defines the lifecycle states of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records a stay reserved by a user for a room. Bookings are never
// deleted; cancellation is the only mutation and is terminal.
type Booking struct {
	ID        string        `json:"id"`
	RoomID    string        `json:"roomId"`
	UserID    string        `json:"userId"`
	CheckIn   string        `json:"checkIn"`
	CheckOut  string        `json:"checkOut"`
	Status    BookingStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
}

// Terminal reports whether the booking can no longer change state.
func (b Booking) Terminal() bool {
	return b.Status == BookingStatusCancelled
}
