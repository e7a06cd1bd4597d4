package repositories

import (
	"fmt"
	"sort"
	"sync"

	"santa/internal/models"

	"github.com/google/uuid"
)

// MockItemRepository is an in-memory implementation of ItemRepository.
// The claim path holds the write lock for the whole check-and-set, so it
// gives the same exclusivity as the conditional SQL update.
type MockItemRepository struct {
	items map[string]models.WishlistItem
	mu    sync.RWMutex
}

// NewMockItemRepository creates a new instance of MockItemRepository.
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items: make(map[string]models.WishlistItem),
	}
}

// Create appends a new wishlist item at the end of the owner's list. The
// next position is assigned under the write lock, matching the
// transactional assignment of the database implementation.
func (r *MockItemRepository) Create(item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	next := 0
	for _, existing := range r.items {
		if existing.OwnerID == item.OwnerID && existing.Position >= next {
			next = existing.Position + 1
		}
	}
	item.Position = next
	r.items[item.ID] = *item
	return nil
}

// GetByID returns an item by its ID.
func (r *MockItemRepository) GetByID(id string) (*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item with ID %s not found", id)
	}
	return &item, nil
}

// GetByOwner returns a user's items ordered by position.
func (r *MockItemRepository) GetByOwner(ownerID string) ([]models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.WishlistItem
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

// UpdateContent updates the owner-editable fields of an item.
func (r *MockItemRepository) UpdateContent(id, name, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item with ID %s not found for update", id)
	}
	item.Name = name
	item.URL = url
	r.items[id] = item
	return nil
}

// SetPosition updates an item's ordinal position.
func (r *MockItemRepository) SetPosition(id string, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item with ID %s not found for position update", id)
	}
	item.Position = position
	r.items[id] = item
	return nil
}

// ClaimIfUnclaimed sets the claimant only if the item is currently
// unclaimed, reporting whether the write took effect.
func (r *MockItemRepository) ClaimIfUnclaimed(id, claimantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return false, fmt.Errorf("item with ID %s not found", id)
	}
	if item.Claimed {
		return false, nil
	}
	item.Claimed = true
	item.ClaimantID = &claimantID
	r.items[id] = item
	return true, nil
}

// ReleaseIfClaimant resets an item to the unclaimed state while the given
// user still holds the claim, reporting whether the write took effect.
func (r *MockItemRepository) ReleaseIfClaimant(id, claimantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return false, fmt.Errorf("item with ID %s not found for release", id)
	}
	if item.ClaimantID == nil || *item.ClaimantID != claimantID {
		return false, nil
	}
	item.Claimed = false
	item.ClaimantID = nil
	item.Purchased = false
	r.items[id] = item
	return true, nil
}

// SetPurchasedIfClaimant updates the purchased flag, conditional on the
// given user holding the claim.
func (r *MockItemRepository) SetPurchasedIfClaimant(id, claimantID string, purchased bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return false, fmt.Errorf("item with ID %s not found for purchase update", id)
	}
	if item.ClaimantID == nil || *item.ClaimantID != claimantID {
		return false, nil
	}
	item.Purchased = purchased
	r.items[id] = item
	return true, nil
}

// ReleaseByClaimant releases every claim held by the given user.
func (r *MockItemRepository) ReleaseByClaimant(claimantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.ClaimantID != nil && *item.ClaimantID == claimantID {
			item.Claimed = false
			item.ClaimantID = nil
			item.Purchased = false
			r.items[id] = item
		}
	}
	return nil
}

// DeleteByOwner removes all items belonging to a user.
func (r *MockItemRepository) DeleteByOwner(ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.OwnerID == ownerID {
			delete(r.items, id)
		}
	}
	return nil
}
