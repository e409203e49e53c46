// Package forms defines the submitted form shapes and maps validation
// failures to the user-facing messages rendered back on the form page.
package forms

import "github.com/go-playground/validator/v10"

// Canonical user-facing messages. One string per condition, used by both
// the validation mapping and the handlers.
const (
	MsgNameRequired     = "Please enter your name"
	MsgEmailRequired    = "Please enter your email address"
	MsgPasswordRequired = "Please enter your password"
	MsgPasswordTooShort = "Please enter a password of at least 6 characters"
	MsgPasswordMismatch = "Password (confirmation) and password input do not match"
	MsgEmailTaken       = "The email address is already in use"
	MsgTitleRequired    = "Please enter a title"
	MsgContentRequired  = "Please enter content"
)

// LoginForm is the login screen submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegistrationForm is the account registration submission. Password is
// mandatory and must match its confirmation.
type RegistrationForm struct {
	Name                 string `form:"name" validate:"required"`
	Email                string `form:"email" validate:"required"`
	Password             string `form:"password" validate:"required,min=6"`
	PasswordConfirmation string `form:"password_confirmation" validate:"eqfield=Password"`
}

// AccountEditForm is the account edit submission. Leaving both password
// fields blank keeps the current password, so the password rules only apply
// when a new one is entered.
type AccountEditForm struct {
	Name                 string `form:"name" validate:"required"`
	Email                string `form:"email" validate:"required"`
	Password             string `form:"password" validate:"omitempty,min=6"`
	PasswordConfirmation string `form:"password_confirmation" validate:"eqfield=Password"`
}

// TaskForm is the task registration and task edit submission.
type TaskForm struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// Messages converts a validator error into the ordered list of user-facing
// messages for the form it came from.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if msg := messageFor(e.Field(), e.Tag()); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}

func messageFor(field, tag string) string {
	switch field {
	case "Name":
		return MsgNameRequired
	case "Email":
		return MsgEmailRequired
	case "Password":
		if tag == "min" {
			return MsgPasswordTooShort
		}
		return MsgPasswordRequired
	case "PasswordConfirmation":
		return MsgPasswordMismatch
	case "Title":
		return MsgTitleRequired
	case "Content":
		return MsgContentRequired
	}
	return ""
}
