package middleware

import (
	"strings"

	"luxpackers-admin/internal/config"
	"luxpackers-admin/internal/pkg/jwt"
	"luxpackers-admin/internal/pkg/response"
	"luxpackers-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware gates every protected route. A request passes only with
// a valid access token AND a live persisted session matching the token's
// user; clearing the session store on logout therefore invalidates every
// outstanding token at once. Rejected requests carry a redirect hint to
// the login route.
func AuthMiddleware(cfg *config.Config, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return unauthorizedWithRedirect(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return unauthorizedWithRedirect(c, "Access token expired")
			}
			return unauthorizedWithRedirect(c, "Invalid access token")
		}

		sess := store.Get()
		if sess == nil || sess.ID != claims.UserID {
			return unauthorizedWithRedirect(c, "Session expired, please log in again")
		}

		c.Locals("userID", sess.ID)
		c.Locals("username", sess.Username)
		c.Locals("role", sess.Role)

		return c.Next()
	}
}

// extractToken reads the access token from the cookie or the
// Authorization header
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func unauthorizedWithRedirect(c *fiber.Ctx, message string) error {
	return response.UnauthorizedRedirect(c, message, "/login")
}
