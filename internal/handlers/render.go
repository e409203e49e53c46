package handlers

import (
	"taskbook/internal/flash"
	"taskbook/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Page titles. Each page renders its logical title as the heading; the
// acceptance suite uses them as the navigation-correctness signal.
const (
	TitleLogin            = "Login Page"
	TitleRegistration     = "Account Registration Page"
	TitleAccountDetail    = "Account Detail Page"
	TitleAccountEdit      = "Account Edit Page"
	TitleTaskList         = "Task List Page"
	TitleTaskRegistration = "Task Registration Page"
	TitleTaskDetail       = "Task Detail Page"
	TitleTaskEdit         = "Task Edit Page"
)

// Flash messages.
const (
	FlashRegistered       = "You have registered your account"
	FlashAccountUpdated   = "You have updated your account"
	FlashAccountDeleted   = "Your account has been deleted"
	FlashLoggedIn         = "You are logged in"
	FlashLoggedOut        = "You are logged out"
	FlashLoginFailed      = "You have an incorrect email address or password"
	FlashTaskRegistered   = "You have registered a task"
	FlashTaskUpdated      = "You have updated the task"
	FlashTaskDeleted      = "You have deleted the task"
)

// render executes a page template with the title, the request's current
// user and any pending one-shot flash message merged into the bind data.
func render(c *fiber.Ctx, name, title string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Title"] = title
	// Always consume the pending flash so a page that supplies its own
	// notice does not leave a stale one to resurface later.
	pending := flash.Pop(c)
	if _, ok := bind["Flash"]; !ok {
		bind["Flash"] = pending
	}
	if user := middleware.UserFromContext(c); user != nil {
		bind["CurrentUser"] = user
	}
	return c.Render(name, bind)
}
