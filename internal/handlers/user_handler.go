package handlers

import (
	"fmt"
	"log"
	"strings"

	"santa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the admin-facing user management endpoints.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user management routes with the Fiber app.
// The caller is expected to mount these behind the admin middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Patch("/:id/participation", h.HandleSetParticipation)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	// For security, do not return the password hashes
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Handle       string `json:"handle" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Participates bool   `json:"participates_in_draw"`
	IsAdmin      bool   `json:"is_admin"`
}

// HandleCreateUser creates a new exchange member.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
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

	user, err := h.userService.CreateUser(req.Handle, req.Email, req.Password, req.Participates, req.IsAdmin)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		if strings.Contains(err.Error(), "already taken") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// HandleDeleteUser removes a user and cascades over their wishlist,
// claims and assignment edges.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.userService.DeleteUser(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
	})
}

// HandleSetParticipation flips a user's draw participation flag.
func (h *UserHandler) HandleSetParticipation(c *fiber.Ctx) error {
	userID := c.Params("id")
	var req struct {
		Participates bool `json:"participates_in_draw"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing participation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.userService.SetParticipation(userID, req.Participates); err != nil {
		log.Printf("Error setting participation for user %s: %v", userID, err)
		return c.Status(statusForServiceError(err)).JSON(fiber.Map{
			"message": "Could not update participation",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Participation for user %s updated successfully", userID),
	})
}
