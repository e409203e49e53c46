package handlers

import (
	"log"

	"taskbook/internal/flash"
	"taskbook/internal/forms"
	"taskbook/internal/middleware"
	"taskbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles the login and logout screens.
type SessionHandler struct {
	authService *services.AuthService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(authService *services.AuthService) *SessionHandler {
	return &SessionHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/sessions/new", h.HandleNew)
	router.Post("/sessions", h.HandleCreate)
	router.Post("/sessions/delete", h.HandleDestroy)
}

// HandleNew renders the login screen.
func (h *SessionHandler) HandleNew(c *fiber.Ctx) error {
	return render(c, "sessions/new", TitleLogin, fiber.Map{
		"Form": forms.LoginForm{},
	})
}

// HandleCreate attempts a login. Success establishes the session and lands
// on the task list; failure re-renders the login screen with a generic
// notice that never reveals whether the email exists.
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	var form forms.LoginForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing login form: %v", err)
		return render(c, "sessions/new", TitleLogin, fiber.Map{
			"Form":  forms.LoginForm{},
			"Flash": FlashLoginFailed,
		})
	}

	token, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		return render(c, "sessions/new", TitleLogin, fiber.Map{
			"Form":  form,
			"Flash": FlashLoginFailed,
		})
	}

	middleware.SetSessionToken(c, token)
	flash.Set(c, FlashLoggedIn)
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleDestroy clears the session unconditionally and returns to the login
// screen.
func (h *SessionHandler) HandleDestroy(c *fiber.Ctx) error {
	middleware.ClearSessionToken(c)
	flash.Set(c, FlashLoggedOut)
	return c.Redirect("/sessions/new", fiber.StatusSeeOther)
}
