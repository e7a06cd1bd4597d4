package handlers

import (
	"errors"
	"strings"

	"santa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForServiceError maps the service error taxonomy to HTTP statuses.
// All of these are recoverable by the client re-fetching current state;
// only verification failures and unknown errors are reported as 5xx.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrAlreadyClaimed), errors.Is(err, services.ErrInvalidSet):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrOwnItem), errors.Is(err, services.ErrNotClaimant), errors.Is(err, services.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInsufficientParticipants):
		return fiber.StatusUnprocessableEntity
	case strings.Contains(err.Error(), "not found"):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// currentUserID pulls the acting user id stored by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
