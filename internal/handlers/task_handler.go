package handlers

import (
	"log"

	"taskbook/internal/flash"
	"taskbook/internal/forms"
	"taskbook/internal/middleware"
	"taskbook/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles the task screens. Every route is owner-scoped: a task
// belonging to another user is treated exactly like a task that does not
// exist.
type TaskHandler struct {
	taskService *services.TaskService
	validate    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the task routes behind the login guard.
// /tasks/new precedes /tasks/:id so "new" is never read as an id.
func (h *TaskHandler) RegisterRoutes(router fiber.Router, requireLogin fiber.Handler) {
	tasks := router.Group("/tasks", requireLogin)
	tasks.Get("/", h.HandleIndex)
	tasks.Get("/new", h.HandleNew)
	tasks.Post("/", h.HandleCreate)
	tasks.Get("/:id", h.HandleShow)
	tasks.Get("/:id/edit", h.HandleEdit)
	tasks.Post("/:id", h.HandleUpdate)
	tasks.Post("/:id/delete", h.HandleDestroy)
}

// HandleIndex renders the task list, restricted to the current user's
// tasks.
func (h *TaskHandler) HandleIndex(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	tasks, err := h.taskService.ListByUser(user.ID)
	if err != nil {
		log.Printf("Error listing tasks for user %s: %v", user.ID, err)
	}
	return render(c, "tasks/index", TitleTaskList, fiber.Map{
		"Tasks": tasks,
	})
}

// HandleNew renders the task registration screen.
func (h *TaskHandler) HandleNew(c *fiber.Ctx) error {
	return render(c, "tasks/new", TitleTaskRegistration, fiber.Map{
		"Form": forms.TaskForm{},
	})
}

// HandleCreate registers a new task owned by the current user.
func (h *TaskHandler) HandleCreate(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)

	var form forms.TaskForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing task form: %v", err)
		return render(c, "tasks/new", TitleTaskRegistration, fiber.Map{
			"Form":   forms.TaskForm{},
			"Errors": []string{forms.MsgTitleRequired, forms.MsgContentRequired},
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return render(c, "tasks/new", TitleTaskRegistration, fiber.Map{
			"Form":   form,
			"Errors": forms.Messages(err),
		})
	}

	if _, err := h.taskService.Create(user.ID, form.Title, form.Content); err != nil {
		log.Printf("Error creating task for user %s: %v", user.ID, err)
		return render(c, "tasks/new", TitleTaskRegistration, fiber.Map{
			"Form":   form,
			"Errors": []string{"Registration failed, please try again"},
		})
	}

	flash.Set(c, FlashTaskRegistered)
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleShow renders the task detail screen.
func (h *TaskHandler) HandleShow(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	task, err := h.taskService.GetOwned(c.Params("id"), user.ID)
	if err != nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}
	return render(c, "tasks/show", TitleTaskDetail, fiber.Map{
		"Task": task,
	})
}

// HandleEdit renders the task edit screen pre-filled with the current
// values.
func (h *TaskHandler) HandleEdit(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	task, err := h.taskService.GetOwned(c.Params("id"), user.ID)
	if err != nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}
	return render(c, "tasks/edit", TitleTaskEdit, fiber.Map{
		"Task": task,
		"Form": forms.TaskForm{Title: task.Title, Content: task.Content},
	})
}

// HandleUpdate applies a task edit.
func (h *TaskHandler) HandleUpdate(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	task, err := h.taskService.GetOwned(c.Params("id"), user.ID)
	if err != nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}

	var form forms.TaskForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing task edit form: %v", err)
		return render(c, "tasks/edit", TitleTaskEdit, fiber.Map{
			"Task":   task,
			"Form":   forms.TaskForm{Title: task.Title, Content: task.Content},
			"Errors": []string{forms.MsgTitleRequired, forms.MsgContentRequired},
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return render(c, "tasks/edit", TitleTaskEdit, fiber.Map{
			"Task":   task,
			"Form":   form,
			"Errors": forms.Messages(err),
		})
	}

	if _, err := h.taskService.Update(task.ID, user.ID, form.Title, form.Content); err != nil {
		log.Printf("Error updating task %s: %v", task.ID, err)
		return render(c, "tasks/edit", TitleTaskEdit, fiber.Map{
			"Task":   task,
			"Form":   form,
			"Errors": []string{"Update failed, please try again"},
		})
	}

	flash.Set(c, FlashTaskUpdated)
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleDestroy deletes one task.
func (h *TaskHandler) HandleDestroy(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	if err := h.taskService.Delete(c.Params("id"), user.ID); err != nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}

	flash.Set(c, FlashTaskDeleted)
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}
