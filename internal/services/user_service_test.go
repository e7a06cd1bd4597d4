package services_test

import (
	"testing"

	"santa/internal/models"
	"santa/internal/repositories"
	"santa/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newUserService() (*services.UserService, *repositories.MockUserRepository, *repositories.MockItemRepository, *repositories.MockAssignmentRepository) {
	userRepo := repositories.NewMockUserRepository()
	itemRepo := repositories.NewMockItemRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	return services.NewUserService(userRepo, itemRepo, assignmentRepo), userRepo, itemRepo, assignmentRepo
}

func TestUserService_CreateUser(t *testing.T) {
	service, _, _, _ := newUserService()

	user, err := service.CreateUser("Alice", "alice@example.com", "password123", true, false)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Handle, "handles are stored lowercase")
	assert.True(t, user.Participates)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// Duplicate handle regardless of case.
	_, err = service.CreateUser("ALICE", "alice2@example.com", "password123", true, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestUserService_SetParticipation(t *testing.T) {
	service, userRepo, _, _ := newUserService()

	user, err := service.CreateUser("bob", "bob@example.com", "password123", true, false)
	assert.NoError(t, err)

	assert.NoError(t, service.SetParticipation(user.ID, false))
	stored, err := userRepo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.False(t, stored.Participates)

	err = service.SetParticipation("missing", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUserService_DeleteUserCascade(t *testing.T) {
	service, userRepo, itemRepo, assignmentRepo := newUserService()

	alice, err := service.CreateUser("alice", "alice@example.com", "password123", true, false)
	assert.NoError(t, err)
	bob, err := service.CreateUser("bob", "bob@example.com", "password123", true, false)
	assert.NoError(t, err)
	carol, err := service.CreateUser("carol", "carol@example.com", "password123", true, false)
	assert.NoError(t, err)

	// Bob owns an item, and holds a claim on one of Alice's.
	bobItem := &models.WishlistItem{OwnerID: bob.ID, Name: "Gloves"}
	assert.NoError(t, itemRepo.Create(bobItem))
	aliceItem := &models.WishlistItem{OwnerID: alice.ID, Name: "Hat"}
	assert.NoError(t, itemRepo.Create(aliceItem))
	ok, err := itemRepo.ClaimIfUnclaimed(aliceItem.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = itemRepo.SetPurchasedIfClaimant(aliceItem.ID, bob.ID, true)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Assignment edges touching Bob on both sides.
	assert.NoError(t, assignmentRepo.ReplaceAll([]models.Assignment{
		{GiverID: alice.ID, ReceiverID: bob.ID},
		{GiverID: bob.ID, ReceiverID: carol.ID},
		{GiverID: carol.ID, ReceiverID: alice.ID},
	}))

	assert.NoError(t, service.DeleteUser(bob.ID))

	// The user record is gone.
	_, err = userRepo.GetByID(bob.ID)
	assert.Error(t, err)

	// Bob's own items are gone.
	bobItems, err := itemRepo.GetByOwner(bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, bobItems)

	// His claim on Alice's item is fully released.
	stored, err := itemRepo.GetByID(aliceItem.ID)
	assert.NoError(t, err)
	assert.False(t, stored.Claimed)
	assert.Nil(t, stored.ClaimantID)
	assert.False(t, stored.Purchased)

	// Edges referencing him as giver or receiver are gone, others remain.
	edges, err := assignmentRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, carol.ID, edges[0].GiverID)

	// Deleting an unknown user is an error, not a silent no-op.
	err = service.DeleteUser(bob.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
