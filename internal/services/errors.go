package services

import "errors"

// Sentinel errors returned by the draw and reservation services. Handlers
// map these to HTTP statuses with errors.Is; everything else is wrapped
// and treated as an internal failure.
var (
	// ErrInsufficientParticipants is returned when a draw is requested
	// with fewer than MinParticipants opted-in users.
	ErrInsufficientParticipants = errors.New("at least 3 draw participants are required")

	// ErrPartialWrite is returned when the stored assignment set fails
	// the post-write bijection check after a regeneration.
	ErrPartialWrite = errors.New("assignment set failed post-write verification")

	// ErrAlreadyClaimed is returned when an item is already claimed by a
	// different user.
	ErrAlreadyClaimed = errors.New("item is already claimed by another user")

	// ErrOwnItem is returned when a user tries to claim their own item.
	ErrOwnItem = errors.New("cannot claim an item on your own wishlist")

	// ErrNotClaimant is returned when release or purchase is attempted by
	// anyone other than the current claimant, including on unclaimed items.
	ErrNotClaimant = errors.New("only the current claimant may modify this reservation")

	// ErrInvalidSet is returned when a reorder request does not name
	// exactly the owner's current item set.
	ErrInvalidSet = errors.New("submitted item ids do not match the current wishlist")

	// ErrNotOwner is returned when a user edits an item they do not own.
	ErrNotOwner = errors.New("item belongs to another user")
)
