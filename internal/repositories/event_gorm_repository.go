package repositories

import (
	"fmt"
	"santa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEventRepository is a GORM implementation of EventRepository.
type GORMEventRepository struct {
	db *gorm.DB
}

// NewGORMEventRepository creates a new instance of GORMEventRepository.
func NewGORMEventRepository(db *gorm.DB) *GORMEventRepository {
	return &GORMEventRepository{
		db: db,
	}
}

// Get retrieves the event record, creating a default one on first access.
func (r *GORMEventRepository) Get() (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event).Error
	if err == gorm.ErrRecordNotFound {
		event = models.Event{ID: uuid.New().String(), Name: "Secret Santa"}
		if err := r.db.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create default event: %w", err)
		}
		return &event, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// Update updates the event record.
func (r *GORMEventRepository) Update(event *models.Event) error {
	res := r.db.Save(event)
	if res.Error != nil {
		return fmt.Errorf("failed to update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("event with ID %s not found for update", event.ID)
	}
	return nil
}
