package handlers

import (
	"errors"
	"net/http"

	"booking_backend/internal/models"
	"booking_backend/internal/services"
	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	LoggedInMsg           = "Logged in successfully!"
	InvalidCredentialsMsg = "Invalid username or password"
	LoggedOutMsg          = "Logged out successfully!"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	authService services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: as, sessions: sessions}
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	renderView(c, h.sessions, http.StatusOK, PageAdminLogin, nil)
}

// Login verifies the submitted credentials. Failure re-renders the login page with a notice.
func (h *AuthHandler) Login(c *gin.Context) {
	if err := requirePostForm(c, "username", "password"); err != nil {
		respondMissingField(c, err)
		return
	}

	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		utils.LogError(err, "Login: Failed to bind form")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid form payload.", err.Error()))
		return
	}

	sess := session.FromContext(c)
	user, err := h.authService.LoginAdmin(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.LogWarn("Failed admin login", map[string]interface{}{"username": creds.Username, "client_ip": c.ClientIP()})
			sess.AddFlash(InvalidCredentialsMsg)
			renderView(c, h.sessions, http.StatusOK, PageAdminLogin, nil)
			return
		}
		utils.LogError(err, "Login: Error from authService.LoginAdmin")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed.", "Internal error"))
		return
	}

	utils.LogInfo("Admin logged in", map[string]interface{}{"username": user.Username})
	sess.LogIn()
	sess.AddFlash(LoggedInMsg)
	redirectTo(c, h.sessions, "/admin")
}

// Logout clears the admin flag. It succeeds whether or not the client was logged in.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := session.FromContext(c)
	sess.LogOut()
	sess.AddFlash(LoggedOutMsg)
	redirectTo(c, h.sessions, "/")
}
