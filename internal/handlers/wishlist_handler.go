package handlers

import (
	"fmt"
	"log"

	"santa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles wishlist browsing and owner-side item editing.
type WishlistHandler struct {
	wishlistService *services.WishlistService
	validate        *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/wishlists/:userId", h.HandleGetWishlist)
	itemRoutes := router.Group("/items")
	itemRoutes.Post("/", h.HandleAddItem)
	itemRoutes.Put("/:id", h.HandleUpdateItem)
}

// HandleGetWishlist lists a user's items with the claimant masked for
// the viewer. Owners see their list without learning who claimed what.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	ownerID := c.Params("userId")
	items, err := h.wishlistService.ListFor(currentUserID(c), ownerID)
	if err != nil {
		log.Printf("Error listing wishlist of user %s: %v", ownerID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// ItemRequest represents the request body for adding or editing an item.
type ItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	URL  string `json:"url" validate:"omitempty,url"`
}

// HandleAddItem appends a new item to the acting user's wishlist.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.wishlistService.AddItem(currentUserID(c), req.Name, req.URL)
	if err != nil {
		log.Printf("Error adding item: %v", err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not add item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem edits the name and link of an item the actor owns.
func (h *WishlistHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.wishlistService.UpdateItem(itemID, currentUserID(c), req.Name, req.URL); err != nil {
		log.Printf("Error updating item %s: %v", itemID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not update item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s updated successfully", itemID),
	})
}
