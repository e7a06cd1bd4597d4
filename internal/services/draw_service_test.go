package services_test

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"santa/internal/models"
	"santa/internal/repositories"
	"santa/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of services.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishNotification(templateID, recipient string, variables map[string]string) error {
	args := m.Called(templateID, recipient, variables)
	return args.Error(0)
}

// MockAssignmentStore is a mock implementation of repositories.AssignmentRepository
// used to simulate store misbehavior for the post-write verification.
type MockAssignmentStore struct {
	mock.Mock
}

func (m *MockAssignmentStore) GetAll() ([]models.Assignment, error) {
	args := m.Called()
	return args.Get(0).([]models.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) GetByGiver(giverID string) (*models.Assignment, error) {
	args := m.Called(giverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) ReplaceAll(edges []models.Assignment) error {
	args := m.Called(edges)
	return args.Error(0)
}

func (m *MockAssignmentStore) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// seedParticipants fills a user repository with n draw participants and
// returns their IDs.
func seedParticipants(t *testing.T, repo repositories.UserRepository, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Handle:       fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			Password:     "hash",
			Participates: true,
		}
		assert.NoError(t, repo.Create(user))
		ids = append(ids, user.ID)
	}
	return ids
}

func TestDrawService_InsufficientParticipants(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	seedParticipants(t, userRepo, 2)

	// Pre-existing edges must survive a failed generation untouched.
	previous := []models.Assignment{{GiverID: "a", ReceiverID: "b"}}
	assert.NoError(t, assignmentRepo.ReplaceAll(previous))

	result, err := service.GenerateAssignments()
	assert.ErrorIs(t, err, services.ErrInsufficientParticipants)
	assert.Nil(t, result)

	stored, err := assignmentRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "a", stored[0].GiverID)
}

func TestDrawService_DerangementProperties(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	ids := seedParticipants(t, userRepo, 6)
	inDraw := make(map[string]bool, len(ids))
	for _, id := range ids {
		inDraw[id] = true
	}

	// A non-participant must never appear on either side of an edge.
	bystander := &models.User{Handle: "bystander", Email: "bystander@example.com", Password: "hash", Participates: false}
	assert.NoError(t, userRepo.Create(bystander))

	for trial := 0; trial < 50; trial++ {
		result, err := service.GenerateAssignments()
		assert.NoError(t, err)
		assert.Len(t, result.Pairs, len(ids))

		stored, err := assignmentRepo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, stored, len(ids))

		givers := make(map[string]bool)
		receivers := make(map[string]bool)
		for _, e := range stored {
			assert.NotEqual(t, e.GiverID, e.ReceiverID, "no self-assignment")
			assert.True(t, inDraw[e.GiverID], "giver must participate")
			assert.True(t, inDraw[e.ReceiverID], "receiver must participate")
			assert.False(t, givers[e.GiverID], "one outgoing edge per giver")
			assert.False(t, receivers[e.ReceiverID], "one incoming edge per receiver")
			givers[e.GiverID] = true
			receivers[e.ReceiverID] = true
		}
		assert.Len(t, givers, len(ids))
		assert.Len(t, receivers, len(ids))
	}
}

func TestDrawService_RegenerationReplacesSet(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	ids := seedParticipants(t, userRepo, 5)

	_, err := service.GenerateAssignments()
	assert.NoError(t, err)
	_, err = service.GenerateAssignments()
	assert.NoError(t, err)

	// Exactly |P| edges after back-to-back generations: no duplicates, no
	// leftovers from the first set.
	stored, err := assignmentRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, stored, len(ids))
}

func TestDrawService_ReshuffleVaries(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	seedParticipants(t, userRepo, 5)

	// Statistical, not per-call: over 20 regenerations of 5 participants
	// ((5-1)! = 24 possible cycles) at least two mappings should differ.
	seen := make(map[string]bool)
	for trial := 0; trial < 20; trial++ {
		result, err := service.GenerateAssignments()
		assert.NoError(t, err)
		seen[canonicalPairs(result.Pairs)] = true
	}
	assert.Greater(t, len(seen), 1, "repeated draws should not always produce the same mapping")
}

// canonicalPairs renders a mapping in a deterministic form for comparison.
func canonicalPairs(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + ">" + pairs[k] + ";"
	}
	return out
}

func TestDrawService_ConcurrentGeneration(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	ids := seedParticipants(t, userRepo, 5)

	// Overlapping regenerations share the service's shuffle; run enough of
	// them in parallel that the race detector would catch unsynchronized
	// access to it. Every run replaces the whole set, so each one still
	// sees a complete mapping.
	const workers = 4
	const rounds = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*rounds)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if _, err := service.GenerateAssignments(); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	// Whichever run finished last left a valid derangement behind.
	edges, err := assignmentRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, edges, len(ids))
	for _, edge := range edges {
		assert.NotEqual(t, edge.GiverID, edge.ReceiverID)
	}
}

func TestDrawService_PartialWriteDetected(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	seedParticipants(t, userRepo, 4)

	// The store claims success but persists a truncated edge set.
	store := new(MockAssignmentStore)
	store.On("ReplaceAll", mock.AnythingOfType("[]models.Assignment")).Return(nil)
	store.On("GetAll").Return([]models.Assignment{{GiverID: "x", ReceiverID: "y"}}, nil)

	service := services.NewDrawService(userRepo, store, nil)
	result, err := service.GenerateAssignments()
	assert.ErrorIs(t, err, services.ErrPartialWrite)
	assert.Nil(t, result)
	store.AssertExpectations(t)
}

func TestDrawService_Notifications(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()

	seedParticipants(t, userRepo, 4)

	notifier := new(MockNotifier)
	// One recipient fails; the rest must still be attempted and counted.
	notifier.On("PublishNotification", "assignment", "user1@example.com", mock.Anything).
		Return(errors.New("broker unavailable"))
	notifier.On("PublishNotification", "assignment", mock.Anything, mock.Anything).
		Return(nil)

	service := services.NewDrawService(userRepo, assignmentRepo, notifier)
	result, err := service.GenerateAssignments()
	assert.NoError(t, err, "notification failures never fail the draw")
	assert.Equal(t, 3, result.NotificationsSent)
	assert.Equal(t, 1, result.NotificationsFailed)
	notifier.AssertNumberOfCalls(t, "PublishNotification", 4)
}

func TestDrawService_GetAssignmentFor(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	assignmentRepo := repositories.NewMockAssignmentRepository()
	service := services.NewDrawService(userRepo, assignmentRepo, nil)

	ids := seedParticipants(t, userRepo, 3)

	result, err := service.GenerateAssignments()
	assert.NoError(t, err)

	giver := ids[0]
	receiver, err := service.GetAssignmentFor(giver)
	assert.NoError(t, err)
	assert.Equal(t, result.Pairs[giver], receiver.ID)

	// A user outside the draw has no assignment.
	_, err = service.GetAssignmentFor("missing-user")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
