package handlers

import (
	"fmt"
	"log"

	"santa/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EventHandler handles the single global event record.
type EventHandler struct {
	eventRepo repositories.EventRepository
	validate  *validator.Validate
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventRepo repositories.EventRepository) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the event read route.
func (h *EventHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/event", h.HandleGetEvent)
}

// RegisterAdminRoutes registers the event update route.
func (h *EventHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Put("/event", h.HandleUpdateEvent)
}

// HandleGetEvent returns the event record.
func (h *EventHandler) HandleGetEvent(c *fiber.Ctx) error {
	event, err := h.eventRepo.Get()
	if err != nil {
		log.Printf("Error getting event: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve event",
			"error":   err.Error(),
		})
	}
	return c.JSON(event)
}

// EventRequest represents the request body for updating the event.
type EventRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Date string `json:"date" validate:"omitempty,max=100"`
}

// HandleUpdateEvent updates the event display name and date.
func (h *EventHandler) HandleUpdateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing event request body: %v", err)
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

	event, err := h.eventRepo.Get()
	if err != nil {
		log.Printf("Error getting event for update: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve event",
			"error":   err.Error(),
		})
	}
	event.Name = req.Name
	event.Date = req.Date
	if err := h.eventRepo.Update(event); err != nil {
		log.Printf("Error updating event: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update event",
			"error":   err.Error(),
		})
	}
	return c.JSON(event)
}
