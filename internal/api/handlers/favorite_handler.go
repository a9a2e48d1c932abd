package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utsavdotdev/basobas/internal/services"
)

// FavoriteHandler handles requests for the favorites set and its view.
type FavoriteHandler struct {
	sessionService services.ISessionService
	profileService services.IProfileService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(sessionService services.ISessionService, profileService services.IProfileService) *FavoriteHandler {
	return &FavoriteHandler{
		sessionService: sessionService,
		profileService: profileService,
	}
}

// ListFavorites handles GET /v1/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.sessionService.Favorites()})
}

// AddFavorite handles POST /v1/favorites/:id. Adding an id twice is a no-op.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	if err := h.sessionService.AddFavorite(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": h.sessionService.Favorites()})
}

// RemoveFavorite handles DELETE /v1/favorites/:id
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	if err := h.sessionService.RemoveFavorite(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": h.sessionService.Favorites()})
}

// FavoriteRooms handles GET /v1/profile/favorites
func (h *FavoriteHandler) FavoriteRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.profileService.FavoriteRooms()})
}
