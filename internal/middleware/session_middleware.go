package middleware

import (
	"time"

	"taskbook/internal/flash"
	"taskbook/internal/models"
	"taskbook/internal/repositories"
	"taskbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "taskbook_session"

	// currentUserKey is the Locals key for the authenticated user.
	currentUserKey = "current_user"

	// loginPath is where unauthenticated visitors are sent.
	loginPath = "/sessions/new"
)

// PleaseLoginMessage is flashed when a protected route is hit without a
// session.
const PleaseLoginMessage = "Please login"

// CurrentUser resolves the session cookie into a user and stores it in the
// request-scoped Locals. It never rejects a request: pages that work both
// logged in and logged out read the result, and LoginRequired enforces it.
func CurrentUser(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Next()
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			return c.Next()
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			return c.Next()
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// LoginRequired guards protected routes. Without an authenticated user the
// request is redirected to the login page with a "Please login" notice
// before any data is read or written.
func LoginRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFromContext(c) == nil {
			flash.Set(c, PleaseLoginMessage)
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// UserFromContext returns the authenticated user for this request, or nil.
func UserFromContext(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetSessionToken stores the session token in an HttpOnly cookie.
func SetSessionToken(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
}

// ClearSessionToken expires the session cookie. Clearing an absent cookie
// is harmless, so logout stays idempotent.
func ClearSessionToken(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
