package services_test

import (
	"fmt"
	"testing"

	"taskbook/internal/models"
	"taskbook/internal/repositories"
	"taskbook/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Update(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("old_password"), bcrypt.DefaultCost)
	existing := &models.User{
		ID:       "user-123",
		Name:     "user_name",
		Email:    "user@email.com",
		Password: string(hashedPassword),
	}

	// Test successful update with a new password
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)
	var saved *models.User
	mockRepo.On("GetByID", "user-123").Return(existing, nil).Once()
	mockRepo.On("GetByEmail", "edit_user@email.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.User)
	}).Return(nil).Once()

	updated, err := userService.Update("user-123", "edit_user_name", "Edit_User@Email.com", "edit_password")
	assert.NoError(t, err)
	assert.Equal(t, "edit_user_name", updated.Name)
	assert.Equal(t, "edit_user@email.com", updated.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("edit_password")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateKeepsPasswordWhenBlank(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("old_password"), bcrypt.DefaultCost)
	existing := &models.User{
		ID:       "user-123",
		Name:     "user_name",
		Email:    "user@email.com",
		Password: string(hashedPassword),
	}

	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)
	var saved *models.User
	mockRepo.On("GetByID", "user-123").Return(existing, nil).Once()
	mockRepo.On("GetByEmail", "user@email.com").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.User)
	}).Return(nil).Once()

	_, err := userService.Update("user-123", "new_name", "user@email.com", "")
	assert.NoError(t, err)
	// The stored credential is untouched: the old password still verifies.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("old_password")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateRejectsTakenEmail(t *testing.T) {
	existing := &models.User{ID: "user-123", Name: "user_name", Email: "user@email.com"}
	other := &models.User{ID: "user-456", Name: "second_user_name", Email: "second_user@email.com"}

	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)
	mockRepo.On("GetByID", "user-123").Return(existing, nil).Once()
	mockRepo.On("GetByEmail", "second_user@email.com").Return(other, nil).Once()

	_, err := userService.Update("user-123", "user_name", "second_user@email.com", "")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)
	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("user with ID missing not found")).Once()

	_, err := userService.Update("missing", "name", "email@email.com", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteCascades(t *testing.T) {
	// Uses the in-memory repositories so the cascade is observable.
	taskRepo := repositories.NewMockTaskRepository()
	userRepo := repositories.NewMockUserRepository(taskRepo)
	userService := services.NewUserService(userRepo, nil)

	user := &models.User{Name: "user_name", Email: "user@email.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))
	other := &models.User{Name: "second_user_name", Email: "second_user@email.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(other))

	for n := 0; n < 10; n++ {
		assert.NoError(t, taskRepo.Create(&models.Task{
			Title:   fmt.Sprintf("task_title_%d", n),
			Content: fmt.Sprintf("task_content_%d", n),
			UserID:  user.ID,
		}))
	}
	assert.NoError(t, taskRepo.Create(&models.Task{
		Title:   "second_user_task",
		Content: "task_content",
		UserID:  other.ID,
	}))

	assert.NoError(t, userService.Delete(user.ID))

	_, err := userRepo.GetByID(user.ID)
	assert.Error(t, err)

	remaining, err := taskRepo.GetAllByUserID(user.ID)
	assert.NoError(t, err)
	assert.Len(t, remaining, 0)

	// The other user's tasks survive.
	otherTasks, err := taskRepo.GetAllByUserID(other.ID)
	assert.NoError(t, err)
	assert.Len(t, otherTasks, 1)
}

func TestUserService_DeleteUnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)
	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("user with ID missing not found")).Once()

	err := userService.Delete("missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
