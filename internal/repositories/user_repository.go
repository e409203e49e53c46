package repositories

import "taskbook/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	// DeleteWithTasks removes the user and every task they own in a
	// single transaction.
	DeleteWithTasks(id string) error
}
