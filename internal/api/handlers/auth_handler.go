package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utsavdotdev/basobas/internal/auth"
	"github.com/utsavdotdev/basobas/internal/config"
	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/services"
)

// AuthHandler handles the mocked login/logout flow and phone verification.
type AuthHandler struct {
	cfg                 *config.Config
	sessionService      services.ISessionService
	verificationService services.IVerificationService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, sessionService services.ISessionService, verificationService services.IVerificationService) *AuthHandler {
	return &AuthHandler{
		cfg:                 cfg,
		sessionService:      sessionService,
		verificationService: verificationService,
	}
}

// Login handles POST /v1/auth/login. The login is mocked: picking a role
// fabricates a fixed identity; there are no credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.sessionService.Login(models.Role(req.Role))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user, h.cfg.JwtSecret, h.cfg.JwtTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout handles POST /v1/auth/logout. Device-scoped state (favorites,
// bookings, posted rooms) survives.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.sessionService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// SendPhoneCode handles POST /v1/auth/phone/send
func (h *AuthHandler) SendPhoneCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.verificationService.SendCode(req.Phone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyPhoneCode handles POST /v1/auth/phone/verify
func (h *AuthHandler) VerifyPhoneCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.verificationService.VerifyCode(req.Phone, req.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := h.sessionService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, user)
}
