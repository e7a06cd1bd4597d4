package repositories

import (
	"fmt"
	"santa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// Create appends a new wishlist item at the end of the owner's list. The
// next position is computed inside the same transaction as the insert so
// concurrent adds by one owner never end up with the same ordinal.
func (r *GORMItemRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.WishlistItem{}).
			Where("owner_id = ?", item.OwnerID).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		item.Position = next
		return tx.Create(item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// GetByID retrieves a single wishlist item by its ID.
func (r *GORMItemRepository) GetByID(id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("item with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get item by ID %s: %w", id, err)
	}
	return &item, nil
}

// GetByOwner retrieves a user's wishlist items ordered by position.
func (r *GORMItemRepository) GetByOwner(ownerID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Order("position asc").Find(&items, "owner_id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get items for owner %s: %w", ownerID, err)
	}
	return items, nil
}

// UpdateContent updates the owner-editable fields of an item.
func (r *GORMItemRepository) UpdateContent(id, name, url string) error {
	res := r.db.Model(&models.WishlistItem{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "url": url})
	if res.Error != nil {
		return fmt.Errorf("failed to update item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %s not found for update", id)
	}
	return nil
}

// SetPosition updates an item's ordinal position. Position is disjoint
// from the claim fields, so this never races with claim or release.
func (r *GORMItemRepository) SetPosition(id string, position int) error {
	res := r.db.Model(&models.WishlistItem{}).Where("id = ?", id).
		Update("position", position)
	if res.Error != nil {
		return fmt.Errorf("failed to set position for item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %s not found for position update", id)
	}
	return nil
}

// ClaimIfUnclaimed performs the conditional claim write. The WHERE on
// claimed = false makes the row update the compare-and-swap: of two
// racing claimers exactly one sees RowsAffected == 1.
func (r *GORMItemRepository) ClaimIfUnclaimed(id, claimantID string) (bool, error) {
	res := r.db.Model(&models.WishlistItem{}).
		Where("id = ? AND claimed = ?", id, false).
		Updates(map[string]interface{}{"claimed": true, "claimant_id": claimantID})
	if res.Error != nil {
		return false, fmt.Errorf("failed to claim item %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ReleaseIfClaimant resets an item to the unclaimed state, but only while
// the given user still holds the claim. The WHERE on claimant_id mirrors
// the claim write: a release that lost a race with a rival claim affects
// zero rows instead of wiping the rival's claim. Purchased is cleared
// together with the claim; it is never left set on an unclaimed item.
func (r *GORMItemRepository) ReleaseIfClaimant(id, claimantID string) (bool, error) {
	res := r.db.Model(&models.WishlistItem{}).
		Where("id = ? AND claimant_id = ?", id, claimantID).
		Updates(map[string]interface{}{"claimed": false, "claimant_id": nil, "purchased": false})
	if res.Error != nil {
		return false, fmt.Errorf("failed to release item %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// SetPurchasedIfClaimant updates the purchased flag, conditional on the
// given user holding the claim, so a stale toggle can never mark an
// unclaimed or re-claimed item.
func (r *GORMItemRepository) SetPurchasedIfClaimant(id, claimantID string, purchased bool) (bool, error) {
	res := r.db.Model(&models.WishlistItem{}).
		Where("id = ? AND claimant_id = ?", id, claimantID).
		Updates(map[string]interface{}{"purchased": purchased})
	if res.Error != nil {
		return false, fmt.Errorf("failed to set purchased for item %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ReleaseByClaimant releases every claim held by the given user. Used by
// the user-deletion cascade.
func (r *GORMItemRepository) ReleaseByClaimant(claimantID string) error {
	res := r.db.Model(&models.WishlistItem{}).Where("claimant_id = ?", claimantID).
		Updates(map[string]interface{}{"claimed": false, "claimant_id": nil, "purchased": false})
	if res.Error != nil {
		return fmt.Errorf("failed to release claims of user %s: %w", claimantID, res.Error)
	}
	return nil
}

// DeleteByOwner removes all items belonging to a user. Used by the
// user-deletion cascade; the delete is unscoped to actually free the rows.
func (r *GORMItemRepository) DeleteByOwner(ownerID string) error {
	if err := r.db.Unscoped().Where("owner_id = ?", ownerID).Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete items of owner %s: %w", ownerID, err)
	}
	return nil
}
