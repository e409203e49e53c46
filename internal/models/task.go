package models

import "gorm.io/gorm"

// Task is a single to-do item. UserID is set at creation and never changes.
type Task struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `gorm:"type:varchar(255);not null" validate:"required"`
	Content    string `gorm:"type:text;not null" validate:"required"`
	UserID     string `gorm:"index;type:varchar(36);not null" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
