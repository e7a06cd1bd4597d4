package repositories

import "santa/internal/models"

// ItemRepository defines the interface for wishlist item data access.
//
// ClaimIfUnclaimed is the serialization point for concurrent claims: it
// must set the claimant with a single conditional write (only where
// claimed is currently false) and report whether the write took effect,
// never with a read followed by an unconditional write. ReleaseIfClaimant
// and SetPurchasedIfClaimant are conditional the same way, keyed on the
// current claimant, so a stale release or purchase cannot land on a claim
// held by someone else.
//
// Create appends the item at the end of the owner's list; the position is
// assigned inside the write so two concurrent adds never share an ordinal.
type ItemRepository interface {
	Create(item *models.WishlistItem) error
	GetByID(id string) (*models.WishlistItem, error)
	GetByOwner(ownerID string) ([]models.WishlistItem, error)
	UpdateContent(id, name, url string) error
	SetPosition(id string, position int) error
	ClaimIfUnclaimed(id, claimantID string) (bool, error)
	ReleaseIfClaimant(id, claimantID string) (bool, error)
	SetPurchasedIfClaimant(id, claimantID string, purchased bool) (bool, error)
	ReleaseByClaimant(claimantID string) error
	DeleteByOwner(ownerID string) error
}
