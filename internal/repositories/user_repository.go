package repositories

import "santa/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByHandle(handle string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetParticipants() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
