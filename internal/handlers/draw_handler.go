package handlers

import (
	"log"

	"santa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DrawHandler handles assignment generation and lookup.
type DrawHandler struct {
	drawService *services.DrawService
}

// NewDrawHandler creates a new DrawHandler.
func NewDrawHandler(drawService *services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// RegisterRoutes registers the assignment lookup route. The generation
// route is registered separately so it can sit behind the admin middleware.
func (h *DrawHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/assignments/me", h.HandleGetMyAssignment)
}

// RegisterAdminRoutes registers the generation route.
func (h *DrawHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/assignments/generate", h.HandleGenerate)
}

// HandleGenerate runs the draw, replacing any previous assignment set,
// and reports the notification tallies.
func (h *DrawHandler) HandleGenerate(c *fiber.Ctx) error {
	result, err := h.drawService.GenerateAssignments()
	if err != nil {
		log.Printf("Error generating assignments: %v", err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not generate assignments",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":              "Assignments generated successfully",
		"count":                len(result.Pairs),
		"notifications_sent":   result.NotificationsSent,
		"notifications_failed": result.NotificationsFailed,
	})
}

// HandleGetMyAssignment returns the receiver assigned to the acting user.
func (h *DrawHandler) HandleGetMyAssignment(c *fiber.Ctx) error {
	receiver, err := h.drawService.GetAssignmentFor(currentUserID(c))
	if err != nil {
		log.Printf("Error getting assignment: %v", err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not retrieve assignment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"receiver_id":     receiver.ID,
		"receiver_handle": receiver.Handle,
	})
}
