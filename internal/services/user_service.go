package services

import (
	"fmt"
	"strings"

	"santa/internal/models"
	"santa/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles the admin-facing user management, including the
// cleanup cascade when a user is removed.
type UserService struct {
	userRepo       repositories.UserRepository
	itemRepo       repositories.ItemRepository
	assignmentRepo repositories.AssignmentRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, assignmentRepo repositories.AssignmentRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		itemRepo:       itemRepo,
		assignmentRepo: assignmentRepo,
	}
}

// NormalizeHandle lowercases and trims a handle; handles are matched
// case-insensitively everywhere.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// CreateUser registers a new exchange member with a hashed password.
func (s *UserService) CreateUser(handle, email, password string, participates, isAdmin bool) (*models.User, error) {
	handle = NormalizeHandle(handle)
	if existing, err := s.userRepo.GetByHandle(handle); err == nil && existing != nil {
		return nil, fmt.Errorf("handle '%s' already taken", handle)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Handle:       handle,
		Email:        email,
		Password:     string(hashedPassword),
		IsAdmin:      isAdmin,
		Participates: participates,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user by ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// SetParticipation flips a user's draw participation flag.
func (s *UserService) SetParticipation(userID string, participates bool) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	user.Participates = participates
	return s.userRepo.Update(user)
}

// DeleteUser removes a user and everything referencing them. The store is
// a record API without foreign-key cascades, so the cleanup is an explicit
// sequence: the user's own items, the claims they hold on other lists,
// the assignment edges on either side, and finally the user record.
func (s *UserService) DeleteUser(userID string) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteByOwner(userID); err != nil {
		return fmt.Errorf("failed to remove wishlist of user %s: %w", userID, err)
	}
	if err := s.itemRepo.ReleaseByClaimant(userID); err != nil {
		return fmt.Errorf("failed to release claims of user %s: %w", userID, err)
	}
	if err := s.assignmentRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to remove assignments of user %s: %w", userID, err)
	}
	return s.userRepo.Delete(userID)
}
