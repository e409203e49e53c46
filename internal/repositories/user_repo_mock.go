package repositories

import (
	"fmt"
	"sync"
	"taskbook/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It can be wired to a MockTaskRepository so DeleteWithTasks cascades the
// same way the GORM implementation does.
type MockUserRepository struct {
	users map[string]models.User
	tasks *MockTaskRepository // optional, for cascade delete
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
// tasks may be nil when cascade behavior is not under test.
func NewMockUserRepository(tasks *MockTaskRepository) *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
		tasks: tasks,
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s already exists", user.Email)
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// Update modifies an existing user.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %s not found for update", user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

// DeleteWithTasks removes the user and, when a task repository is wired,
// every task they own.
func (r *MockUserRepository) DeleteWithTasks(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with ID %s not found for deletion", id)
	}
	delete(r.users, id)
	if r.tasks != nil {
		r.tasks.deleteAllByUserID(id)
	}
	return nil
}
