package repositories

import (
	"fmt"
	"sync"

	"santa/internal/models"

	"github.com/google/uuid"
)

// MockAssignmentRepository is an in-memory implementation of
// AssignmentRepository. ReplaceAll swaps the backing map wholesale under
// the lock, matching the transactional semantics of the GORM version.
type MockAssignmentRepository struct {
	edges map[string]models.Assignment
	mu    sync.RWMutex
}

// NewMockAssignmentRepository creates a new instance of MockAssignmentRepository.
func NewMockAssignmentRepository() *MockAssignmentRepository {
	return &MockAssignmentRepository{
		edges: make(map[string]models.Assignment),
	}
}

// GetAll returns the full assignment edge set.
func (r *MockAssignmentRepository) GetAll() ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	edgeList := make([]models.Assignment, 0, len(r.edges))
	for _, e := range r.edges {
		edgeList = append(edgeList, e)
	}
	return edgeList, nil
}

// GetByGiver returns the outgoing edge of a giver.
func (r *MockAssignmentRepository) GetByGiver(giverID string) (*models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.edges {
		if e.GiverID == giverID {
			edge := e
			return &edge, nil
		}
	}
	return nil, fmt.Errorf("assignment for giver %s not found", giverID)
}

// ReplaceAll swaps the entire edge set.
func (r *MockAssignmentRepository) ReplaceAll(edges []models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]models.Assignment, len(edges))
	for i := range edges {
		if edges[i].ID == "" {
			edges[i].ID = uuid.New().String()
		}
		next[edges[i].ID] = edges[i]
	}
	r.edges = next
	return nil
}

// DeleteByUser removes every edge referencing the user as giver or receiver.
func (r *MockAssignmentRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.edges {
		if e.GiverID == userID || e.ReceiverID == userID {
			delete(r.edges, id)
		}
	}
	return nil
}
