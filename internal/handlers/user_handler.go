package handlers

import (
	"errors"
	"log"

	"taskbook/internal/flash"
	"taskbook/internal/forms"
	"taskbook/internal/middleware"
	"taskbook/internal/models"
	"taskbook/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles account registration, viewing, editing and deletion.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Registration
// is public; everything else requires a session. /users/new is registered
// before /users/:id so the path segment "new" is never read as an id.
func (h *UserHandler) RegisterRoutes(router fiber.Router, requireLogin fiber.Handler) {
	router.Get("/users/new", h.HandleNew)
	router.Post("/users", h.HandleCreate)
	router.Get("/users/:id", requireLogin, h.HandleShow)
	router.Get("/users/:id/edit", requireLogin, h.HandleEdit)
	router.Post("/users/:id", requireLogin, h.HandleUpdate)
	router.Post("/users/:id/delete", requireLogin, h.HandleDestroy)
}

// HandleNew renders the account registration screen.
func (h *UserHandler) HandleNew(c *fiber.Ctx) error {
	return render(c, "users/new", TitleRegistration, fiber.Map{
		"Form": forms.RegistrationForm{},
	})
}

// HandleCreate registers a new account. Success logs the new user in and
// lands on the task list; validation failure re-renders the form with every
// field message and nothing persisted.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var form forms.RegistrationForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing registration form: %v", err)
		return render(c, "users/new", TitleRegistration, fiber.Map{
			"Form":   forms.RegistrationForm{},
			"Errors": []string{forms.MsgNameRequired, forms.MsgEmailRequired, forms.MsgPasswordRequired},
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return render(c, "users/new", TitleRegistration, fiber.Map{
			"Form":   form,
			"Errors": forms.Messages(err),
		})
	}

	user := &models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}
	if err := h.authService.Register(user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return render(c, "users/new", TitleRegistration, fiber.Map{
				"Form":   form,
				"Errors": []string{forms.MsgEmailTaken},
			})
		}
		log.Printf("Error registering user: %v", err)
		return render(c, "users/new", TitleRegistration, fiber.Map{
			"Form":   form,
			"Errors": []string{"Registration failed, please try again"},
		})
	}

	// Auto-login the freshly registered account.
	token, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		log.Printf("Error logging in registered user %s: %v", user.ID, err)
		flash.Set(c, FlashRegistered)
		return c.Redirect("/sessions/new", fiber.StatusSeeOther)
	}

	middleware.SetSessionToken(c, token)
	flash.Set(c, FlashRegistered)
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleShow renders the account detail screen. Foreign account ids behave
// like missing rows and bounce to the task list.
func (h *UserHandler) HandleShow(c *fiber.Ctx) error {
	user := h.ownAccount(c)
	if user == nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}
	return render(c, "users/show", TitleAccountDetail, fiber.Map{
		"User": user,
	})
}

// HandleEdit renders the account edit screen pre-filled with the current
// values.
func (h *UserHandler) HandleEdit(c *fiber.Ctx) error {
	user := h.ownAccount(c)
	if user == nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}
	return render(c, "users/edit", TitleAccountEdit, fiber.Map{
		"User": user,
		"Form": forms.AccountEditForm{Name: user.Name, Email: user.Email},
	})
}

// HandleUpdate applies an account edit. Blank password fields keep the
// stored password.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	user := h.ownAccount(c)
	if user == nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}

	var form forms.AccountEditForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing account edit form: %v", err)
		return render(c, "users/edit", TitleAccountEdit, fiber.Map{
			"User":   user,
			"Form":   forms.AccountEditForm{Name: user.Name, Email: user.Email},
			"Errors": []string{forms.MsgNameRequired, forms.MsgEmailRequired},
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return render(c, "users/edit", TitleAccountEdit, fiber.Map{
			"User":   user,
			"Form":   form,
			"Errors": forms.Messages(err),
		})
	}

	updated, err := h.userService.Update(user.ID, form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return render(c, "users/edit", TitleAccountEdit, fiber.Map{
				"User":   user,
				"Form":   form,
				"Errors": []string{forms.MsgEmailTaken},
			})
		}
		log.Printf("Error updating user %s: %v", user.ID, err)
		return render(c, "users/edit", TitleAccountEdit, fiber.Map{
			"User":   user,
			"Form":   form,
			"Errors": []string{"Update failed, please try again"},
		})
	}

	flash.Set(c, FlashAccountUpdated)
	return c.Redirect("/users/"+updated.ID, fiber.StatusSeeOther)
}

// HandleDestroy deletes the account along with every task it owns, clears
// the session and returns to the login screen.
func (h *UserHandler) HandleDestroy(c *fiber.Ctx) error {
	user := h.ownAccount(c)
	if user == nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}

	if err := h.userService.Delete(user.ID); err != nil {
		log.Printf("Error deleting user %s: %v", user.ID, err)
		return c.Redirect("/users/"+user.ID, fiber.StatusSeeOther)
	}

	middleware.ClearSessionToken(c)
	flash.Set(c, FlashAccountDeleted)
	return c.Redirect("/sessions/new", fiber.StatusSeeOther)
}

// ownAccount returns the current user when the :id path parameter is their
// own account, nil otherwise.
func (h *UserHandler) ownAccount(c *fiber.Ctx) *models.User {
	user := middleware.UserFromContext(c)
	if user == nil || user.ID != c.Params("id") {
		return nil
	}
	return user
}
