package repositories

import (
	"fmt"
	"sync"

	"santa/internal/models"

	"github.com/google/uuid"
)

// MockEventRepository is an in-memory implementation of EventRepository.
type MockEventRepository struct {
	event *models.Event
	mu    sync.RWMutex
}

// NewMockEventRepository creates a new instance of MockEventRepository.
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

// Get returns the event record, creating a default one on first access.
func (r *MockEventRepository) Get() (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.event == nil {
		r.event = &models.Event{ID: uuid.New().String(), Name: "Secret Santa"}
	}
	event := *r.event
	return &event, nil
}

// Update updates the event record.
func (r *MockEventRepository) Update(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.event == nil || r.event.ID != event.ID {
		return fmt.Errorf("event with ID %s not found for update", event.ID)
	}
	e := *event
	r.event = &e
	return nil
}
