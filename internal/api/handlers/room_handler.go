package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/search"
	"github.com/utsavdotdev/basobas/internal/services"
)

// RoomHandler handles REST requests for the room catalog.
type RoomHandler struct {
	roomService    services.IRoomService
	sessionService services.ISessionService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService services.IRoomService, sessionService services.ISessionService) *RoomHandler {
	return &RoomHandler{
		roomService:    roomService,
		sessionService: sessionService,
	}
}

// SearchRooms handles GET /v1/rooms. Every query parameter is optional and
// falls back to the neutral filter value.
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	f := search.DefaultFilter()

	f.Search = c.Query("search")
	f.Location = c.Query("location")
	if typ := c.Query("type"); typ != "" {
		f.Type = typ
	}
	f.Bathroom = c.Query("bathroom") == "true"
	f.Kitchen = c.Query("kitchen") == "true"
	f.Wifi = c.Query("wifi") == "true"
	f.WaterSupply = c.Query("waterSupply") == "true"
	f.Parking = c.Query("parking") == "true"
	f.Furnished = c.Query("furnished") == "true"

	if minStr := c.Query("price_min"); minStr != "" {
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			f.PriceMin = v
		}
	}
	if maxStr := c.Query("price_max"); maxStr != "" {
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			f.PriceMax = v
		}
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		f.SortBy = sortBy
	}

	rooms := h.roomService.SearchRooms(f)
	c.JSON(http.StatusOK, gin.H{
		"rooms":         rooms,
		"total":         len(rooms),
		"activeFilters": search.ActiveCount(f),
	})
}

// GetRoomByID handles GET /v1/rooms/:id
func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	room, err := h.roomService.FindRoomByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// postRoomRequest is the body of POST /v1/rooms.
type postRoomRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Location    string            `json:"location" binding:"required"`
	Price       float64           `json:"price"`
	Type        string            `json:"type" binding:"required"`
	Facilities  models.Facilities `json:"facilities"`
	Images      []string          `json:"images"`
}

// PostRoom handles POST /v1/rooms. Requires an authenticated landlord; the
// landlord reference on the new room is derived from the session user.
func (h *RoomHandler) PostRoom(c *gin.Context) {
	var req postRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := h.sessionService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	landlord := models.Landlord{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Verified: user.Verified,
	}

	room, err := h.roomService.AddRoom(landlord, req.Title, req.Description, req.Location,
		req.Price, models.RoomType(req.Type), req.Facilities, req.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// Features handles GET /v1/features
func (h *RoomHandler) Features(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": h.roomService.Features()})
}
