package repositories

import (
	"fmt"
	"sync"
	"taskbook/internal/models"

	"github.com/google/uuid"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
type MockTaskRepository struct {
	tasks map[string]models.Task
	mu    sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		tasks: make(map[string]models.Task),
	}
}

// Create adds a new task.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	r.tasks[task.ID] = *task
	return nil
}

// GetByID returns a task by its ID.
func (r *MockTaskRepository) GetByID(id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task with ID %s not found", id)
	}
	return &task, nil
}

// GetAllByUserID returns every task owned by the given user.
func (r *MockTaskRepository) GetAllByUserID(userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	taskList := make([]models.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			taskList = append(taskList, t)
		}
	}
	return taskList, nil
}

// Update modifies an existing task.
func (r *MockTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[task.ID]
	if !ok {
		return fmt.Errorf("task with ID %s not found for update", task.ID)
	}
	r.tasks[task.ID] = *task
	return nil
}

// Delete removes a task by its ID.
func (r *MockTaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("task with ID %s not found for deletion", id)
	}
	delete(r.tasks, id)
	return nil
}

// deleteAllByUserID removes every task owned by the given user. Used by
// MockUserRepository to mirror the transactional cascade delete.
func (r *MockTaskRepository) deleteAllByUserID(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
		}
	}
}
