package services

import (
	"fmt"
	"log"

	"taskbook/internal/models"
	"taskbook/internal/repositories"
	"taskbook/pkg/events"

	"github.com/google/uuid"
)

// TaskService handles business logic related to tasks. Every operation is
// scoped to the owning user: a task that exists but belongs to someone else
// behaves exactly like a task that does not exist.
type TaskService struct {
	taskRepo repositories.TaskRepository
	mqClient *events.Client // may be nil when messaging is disabled
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repositories.TaskRepository, mqClient *events.Client) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		mqClient: mqClient,
	}
}

// ListByUser retrieves every task owned by the given user.
func (s *TaskService) ListByUser(userID string) ([]models.Task, error) {
	return s.taskRepo.GetAllByUserID(userID)
}

// Create creates a new task owned by the given user.
func (s *TaskService) Create(userID, title, content string) (*models.Task, error) {
	task := &models.Task{
		ID:      uuid.New().String(),
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publish("task.created", map[string]interface{}{
		"taskID": task.ID,
		"userID": userID,
	})
	return task, nil
}

// GetOwned retrieves a task by ID, returning ErrNotFound when the task does
// not exist or is owned by a different user.
func (s *TaskService) GetOwned(id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil || task.UserID != userID {
		return nil, ErrNotFound
	}
	return task, nil
}

// Update edits the title and content of a task owned by the given user.
func (s *TaskService) Update(id, userID, title, content string) (*models.Task, error) {
	task, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Content = content
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task owned by the given user.
func (s *TaskService) Delete(id, userID string) error {
	if _, err := s.GetOwned(id, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.publish("task.deleted", map[string]interface{}{
		"taskID": id,
		"userID": userID,
	})
	return nil
}

func (s *TaskService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.Publish(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
