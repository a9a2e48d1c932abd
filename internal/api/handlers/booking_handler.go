package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/services"
)

// BookingHandler handles booking creation, cancellation and the joined
// bookings view.
type BookingHandler struct {
	sessionService services.ISessionService
	roomService    services.IRoomService
	profileService services.IProfileService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessionService services.ISessionService, roomService services.IRoomService, profileService services.IProfileService) *BookingHandler {
	return &BookingHandler{
		sessionService: sessionService,
		roomService:    roomService,
		profileService: profileService,
	}
}

// ListBookings handles GET /v1/bookings. Bookings whose room no longer
// exists are absent from the view.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.profileService.BookingDetails()})
}

// createBookingRequest is the body of POST /v1/bookings.
type createBookingRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// CreateBooking handles POST /v1/bookings. The booking is attributed to the
// active session user and created confirmed.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := h.sessionService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	if _, err := h.roomService.FindRoomByID(req.RoomID); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up room"})
		return
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn must be an RFC3339 timestamp"})
		return
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be an RFC3339 timestamp"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be after checkIn"})
		return
	}

	booking, err := h.sessionService.AddBooking(req.RoomID, user.ID, req.CheckIn, req.CheckOut, models.BookingStatusConfirmed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles POST /v1/bookings/:id/cancel. Cancellation is
// idempotent: an unknown or already-cancelled id still returns success.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.sessionService.CancelBooking(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
