package services

import (
	"santa/internal/models"
	"santa/internal/repositories"
)

// WishlistService handles owner-side wishlist content: adding items,
// editing them and listing a wishlist for a viewer. There is deliberately
// no delete-item operation; items only leave the store when their owner's
// account is deleted.
type WishlistService struct {
	itemRepo repositories.ItemRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(itemRepo repositories.ItemRepository) *WishlistService {
	return &WishlistService{
		itemRepo: itemRepo,
	}
}

// AddItem appends a new item to the end of the owner's list. The
// repository assigns the position inside its write, so two adds racing on
// the same list never share an ordinal.
func (s *WishlistService) AddItem(ownerID, name, url string) (*models.WishlistItem, error) {
	item := &models.WishlistItem{
		OwnerID: ownerID,
		Name:    name,
		URL:     url,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem edits the name and link of an item the actor owns. The
// claim fields are untouched, so a concurrent claim is never clobbered.
func (s *WishlistService) UpdateItem(itemID, actorID, name, url string) error {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrNotOwner
	}
	return s.itemRepo.UpdateContent(itemID, name, url)
}

// ListFor returns the owner's items in position order with the claimant
// masked for the given viewer.
func (s *WishlistService) ListFor(viewerID, ownerID string) ([]models.WishlistItem, error) {
	items, err := s.itemRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ClaimantID = VisibleClaimant(items[i], viewerID)
	}
	return items, nil
}
