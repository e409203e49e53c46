package services

import (
	"fmt"
	"log"

	"taskbook/internal/models"
	"taskbook/internal/repositories"
	"taskbook/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for account viewing, editing and
// deletion.
type UserService struct {
	userRepo repositories.UserRepository
	mqClient *events.Client // may be nil when messaging is disabled
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, mqClient *events.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// GetByID retrieves a user by their ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// Update applies an account edit. An empty password leaves the stored
// credential unchanged. Returns ErrEmailTaken if the new email belongs to a
// different user.
func (s *UserService) Update(id, name, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	email = NormalizeEmail(email)
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil && existingUser.ID != id {
		return nil, ErrEmailTaken
	}

	user.Name = name
	user.Email = email
	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes the user and all of their tasks.
func (s *UserService) Delete(id string) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return ErrNotFound
	}

	if err := s.userRepo.DeleteWithTasks(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.publish("account.deleted", map[string]interface{}{
		"userID": id,
	})
	return nil
}

func (s *UserService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.Publish(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
