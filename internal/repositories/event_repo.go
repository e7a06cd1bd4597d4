package repositories

import "santa/internal/models"

// EventRepository defines the interface for the single global event record.
type EventRepository interface {
	Get() (*models.Event, error)
	Update(event *models.Event) error
}
