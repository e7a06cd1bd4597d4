package models

import "time"

// Assignment is one giver→receiver edge of the draw. The whole set is
// replaced on every generation, so edges carry no soft-delete marker;
// the unique indexes enforce one outgoing and one incoming edge per user.
type Assignment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	GiverID    string    `json:"giver_id" gorm:"uniqueIndex;type:varchar(36)"`
	ReceiverID string    `json:"receiver_id" gorm:"uniqueIndex;type:varchar(36)"`
	CreatedAt  time.Time `json:"created_at"`
}
