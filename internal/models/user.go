package models

import "gorm.io/gorm"

// User represents an account holder. A user owns zero or more tasks
// exclusively; deleting the user removes every task they own.
type User struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `gorm:"type:varchar(100);not null" validate:"required"`
	Email      string `gorm:"uniqueIndex;type:varchar(255);not null" validate:"required"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash, never rendered
	Tasks      []Task `gorm:"constraint:OnDelete:CASCADE"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
