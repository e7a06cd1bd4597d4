package repositories

import (
	"fmt"
	"santa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAssignmentRepository is a GORM implementation of AssignmentRepository.
type GORMAssignmentRepository struct {
	db *gorm.DB
}

// NewGORMAssignmentRepository creates a new instance of GORMAssignmentRepository.
func NewGORMAssignmentRepository(db *gorm.DB) *GORMAssignmentRepository {
	return &GORMAssignmentRepository{
		db: db,
	}
}

// GetAll retrieves the full assignment edge set.
func (r *GORMAssignmentRepository) GetAll() ([]models.Assignment, error) {
	var edges []models.Assignment
	if err := r.db.Find(&edges).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return edges, nil
}

// GetByGiver retrieves the outgoing edge of a giver.
func (r *GORMAssignmentRepository) GetByGiver(giverID string) (*models.Assignment, error) {
	var edge models.Assignment
	if err := r.db.First(&edge, "giver_id = ?", giverID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assignment for giver %s not found", giverID)
		}
		return nil, fmt.Errorf("failed to get assignment for giver %s: %w", giverID, err)
	}
	return &edge, nil
}

// ReplaceAll swaps the entire edge set inside one transaction. Either the
// new set is fully visible or the old set is untouched.
func (r *GORMAssignmentRepository) ReplaceAll(edges []models.Assignment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Assignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete previous assignments: %w", err)
		}
		for i := range edges {
			if edges[i].ID == "" {
				edges[i].ID = uuid.New().String()
			}
		}
		if len(edges) == 0 {
			return nil
		}
		if err := tx.Create(&edges).Error; err != nil {
			return fmt.Errorf("failed to insert assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace assignment set: %w", err)
	}
	return nil
}

// DeleteByUser removes every edge referencing the user as giver or
// receiver. Used by the user-deletion cascade.
func (r *GORMAssignmentRepository) DeleteByUser(userID string) error {
	if err := r.db.Where("giver_id = ? OR receiver_id = ?", userID, userID).
		Delete(&models.Assignment{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignments of user %s: %w", userID, err)
	}
	return nil
}
