package handlers

import (
	"fmt"
	"log"

	"santa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReservationHandler handles claiming, releasing, purchase marking and
// reordering of wishlist items.
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// RegisterRoutes registers the reservation routes with the Fiber app.
func (h *ReservationHandler) RegisterRoutes(router fiber.Router) {
	router.Put("/wishlists/order", h.HandleReorder)
	itemRoutes := router.Group("/items")
	itemRoutes.Post("/:id/claim", h.HandleClaim)
	itemRoutes.Post("/:id/release", h.HandleRelease)
	itemRoutes.Patch("/:id/purchased", h.HandleMarkPurchased)
}

// HandleClaim reserves an item for the acting user.
func (h *ReservationHandler) HandleClaim(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.reservationService.Claim(itemID, currentUserID(c)); err != nil {
		log.Printf("Error claiming item %s: %v", itemID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not claim item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s claimed successfully", itemID),
	})
}

// HandleRelease clears the acting user's claim on an item.
func (h *ReservationHandler) HandleRelease(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.reservationService.Release(itemID, currentUserID(c)); err != nil {
		log.Printf("Error releasing item %s: %v", itemID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not release item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s released successfully", itemID),
	})
}

// HandleMarkPurchased toggles the purchased flag on a claimed item.
func (h *ReservationHandler) HandleMarkPurchased(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var req struct {
		Purchased bool `json:"purchased"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing purchased request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.reservationService.MarkPurchased(itemID, currentUserID(c), req.Purchased); err != nil {
		log.Printf("Error marking item %s purchased=%v: %v", itemID, req.Purchased, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not update purchase state",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s purchase state updated successfully", itemID),
	})
}

// HandleReorder assigns new positions to the acting user's own items.
func (h *ReservationHandler) HandleReorder(c *fiber.Ctx) error {
	var req struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing reorder request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.reservationService.Reorder(currentUserID(c), req.ItemIDs); err != nil {
		log.Printf("Error reordering wishlist: %v", err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not reorder wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Wishlist reordered successfully",
	})
}
