package models

import "gorm.io/gorm"

// WishlistItem is a single entry on a user's wishlist. Position is the
// owner's manual ordering; it stays dense after a reorder but gaps are
// tolerated. ClaimantID, when set, is never the owner.
type WishlistItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID    string  `json:"owner_id" gorm:"index;type:varchar(36)" validate:"required"`
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	URL        string  `json:"url" validate:"omitempty,url"`
	Position   int     `json:"position"`
	Claimed    bool    `json:"claimed"`
	ClaimantID *string `json:"claimant_id,omitempty" gorm:"type:varchar(36)"`
	Purchased  bool    `json:"purchased"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
