package services

import (
	"fmt"

	"santa/internal/models"
	"santa/internal/repositories"
)

// ReservationService maintains the claim state of wishlist items.
//
// Per item the states are Unclaimed → Claimed → Purchased, with release
// (Claimed → Unclaimed, clearing purchased) and un-mark (Purchased →
// Claimed) as the reverse edges. Purchased is never set on an unclaimed
// item.
type ReservationService struct {
	itemRepo repositories.ItemRepository
}

// NewReservationService creates a new ReservationService.
func NewReservationService(itemRepo repositories.ItemRepository) *ReservationService {
	return &ReservationService{
		itemRepo: itemRepo,
	}
}

// Claim reserves an item for the acting user. Owners can never claim
// their own items. Re-claiming an item the actor already holds is an
// idempotent success, so a retried request does not surface an error.
// The repository's conditional write decides races between two claimers.
func (s *ReservationService) Claim(itemID, actorID string) error {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.OwnerID == actorID {
		return ErrOwnItem
	}

	ok, err := s.itemRepo.ClaimIfUnclaimed(itemID, actorID)
	if err != nil {
		return fmt.Errorf("failed to claim item %s: %w", itemID, err)
	}
	if ok {
		return nil
	}

	// The conditional write did not apply, so somebody holds the claim.
	// Re-read to distinguish our own claim (idempotent retry) from a rival's.
	current, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if current.Claimed && current.ClaimantID != nil && *current.ClaimantID == actorID {
		return nil
	}
	return ErrAlreadyClaimed
}

// Release clears the claim on an item. Only the current claimant may
// release; an unclaimed item has no claimant to match, so releasing it is
// rejected too. The repository write is conditional on the actor still
// holding the claim, so a release that lost a race with a release-and-
// reclaim cannot wipe the new claimant. Purchased is cleared together
// with the claim.
func (s *ReservationService) Release(itemID, actorID string) error {
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		return err
	}
	ok, err := s.itemRepo.ReleaseIfClaimant(itemID, actorID)
	if err != nil {
		return fmt.Errorf("failed to release item %s: %w", itemID, err)
	}
	if !ok {
		return ErrNotClaimant
	}
	return nil
}

// MarkPurchased toggles the purchased flag. Claimant-only in both
// directions; setting the current value again is an idempotent success.
// The write is conditional on the actor holding the claim, so a stale
// request can never leave purchased set on an item the actor no longer
// holds.
func (s *ReservationService) MarkPurchased(itemID, actorID string, purchased bool) error {
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		return err
	}
	ok, err := s.itemRepo.SetPurchasedIfClaimant(itemID, actorID, purchased)
	if err != nil {
		return fmt.Errorf("failed to set purchased for item %s: %w", itemID, err)
	}
	if !ok {
		return ErrNotClaimant
	}
	return nil
}

// Reorder assigns positions 0..n-1 to the owner's items in the submitted
// order. The submitted ids must name exactly the owner's current item set;
// a mismatch means the client reordered a stale list and is rejected
// before any position is written.
func (s *ReservationService) Reorder(ownerID string, orderedIDs []string) error {
	current, err := s.itemRepo.GetByOwner(ownerID)
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(current) {
		return ErrInvalidSet
	}
	existing := make(map[string]bool, len(current))
	for _, item := range current {
		existing[item.ID] = true
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !existing[id] || seen[id] {
			return ErrInvalidSet
		}
		seen[id] = true
	}

	for i, id := range orderedIDs {
		if err := s.itemRepo.SetPosition(id, i); err != nil {
			return fmt.Errorf("failed to reorder item %s: %w", id, err)
		}
	}
	return nil
}

// VisibleClaimant applies the claimant masking rule: everyone may see
// that an item is claimed, but only the claimant sees who holds it. The
// owner in particular never learns who claimed their items.
func VisibleClaimant(item models.WishlistItem, viewerID string) *string {
	if item.ClaimantID != nil && *item.ClaimantID == viewerID {
		return item.ClaimantID
	}
	return nil
}
