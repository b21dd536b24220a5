package handlers

import (
	"errors"
	"strings"
	"time"

	"luxpackers-admin/internal/config"
	"luxpackers-admin/internal/core/domain"
	"luxpackers-admin/internal/core/services"
	"luxpackers-admin/internal/pkg/jwt"
	"luxpackers-admin/internal/pkg/response"
	"luxpackers-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints. The auth service makes
// the login decision; this handler installs the session into the store
// and manages the access-token cookie.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles staff login
// @Summary Login staff user
// @Description Authenticate staff and install the session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// Already signed in: the login route redirects to the landing page
	if h.liveSession(c) != nil {
		return response.Success(c, "Already logged in", fiber.Map{
			"redirect": "/",
		})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	sess, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUsername):
			return response.Unauthorized(c, "Invalid username")
		case errors.Is(err, domain.ErrIncorrectPassword):
			return response.Unauthorized(c, "Incorrect password")
		case errors.Is(err, domain.ErrMisconfiguredAccount):
			return response.InternalServerError(c, "Password is not set correctly for this user")
		default:
			return response.InternalServerError(c, "Login failed. Try again.")
		}
	}

	// Install the session; it is persisted before the cookie goes out
	if err := h.store.Set(*sess); err != nil {
		return response.InternalServerError(c, "Failed to persist session")
	}

	accessToken, err := jwt.GenerateAccessToken(sess.ID, sess.Username, sess.Role, h.cfg.JWT.Secret, h.cfg.JWT.AccessTokenMins)
	if err != nil {
		return response.InternalServerError(c, "Failed to issue access token")
	}

	h.setAuthCookie(c, accessToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"user":         sess,
		"redirect":     "/",
	})
}

// Logout handles logout
// @Summary Logout staff user
// @Description Clear the session and expire the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Clearing the store is the full state reset: every outstanding
	// token dies with the session.
	if err := h.store.Clear(); err != nil {
		return response.InternalServerError(c, "Failed to clear session")
	}

	h.clearAuthCookie(c)

	return response.Success(c, "Logged out", fiber.Map{
		"redirect": "/login",
	})
}

// Me returns the current session
// @Summary Current session
// @Description Returns the signed-in staff user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := h.store.Get()
	if sess == nil {
		return response.Unauthorized(c, "Not logged in")
	}
	return response.Success(c, "Session retrieved", fiber.Map{
		"user": sess,
	})
}

// liveSession returns the current session when the request carries a
// valid token matching it, nil otherwise
func (h *AuthHandler) liveSession(c *fiber.Ctx) *session.Session {
	token := requestToken(c)
	if token == "" {
		return nil
	}
	claims, err := jwt.ValidateAccessToken(token, h.cfg.JWT.Secret)
	if err != nil {
		return nil
	}
	sess := h.store.Get()
	if sess == nil || sess.ID != claims.UserID {
		return nil
	}
	return sess
}

// requestToken reads the access token from the cookie or the
// Authorization header, the same two places the auth middleware accepts
func requestToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// setAuthCookie sets the access token cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.AccessTokenMins) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

// clearAuthCookie expires the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}
