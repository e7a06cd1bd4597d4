package models

import "gorm.io/gorm"

// User represents a member of the gift exchange. Handles are stored
// lowercase and matched case-insensitively.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Handle       string `json:"handle" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Email        string `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Password     string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	IsAdmin      bool   `json:"is_admin"`
	Participates bool   `json:"participates_in_draw" gorm:"column:participates_in_draw"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
