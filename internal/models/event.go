package models

import "gorm.io/gorm"

// Event is the single global exchange record.
type Event struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Date       string `json:"date" validate:"omitempty,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
