package repositories

import "santa/internal/models"

// AssignmentRepository defines the interface for assignment edge access.
// The edge set is only ever replaced wholesale: ReplaceAll must make the
// delete-all plus insert-all a single unit so readers never observe a
// mixed old/new set.
type AssignmentRepository interface {
	GetAll() ([]models.Assignment, error)
	GetByGiver(giverID string) (*models.Assignment, error)
	ReplaceAll(edges []models.Assignment) error
	DeleteByUser(userID string) error
}
