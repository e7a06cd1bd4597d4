package services

import (
	"log"
	"math/rand"

	"santa/internal/models"
	"santa/internal/repositories"

	"github.com/google/uuid"
)

// MinParticipants is the smallest draw for which the rotation produces a
// derangement without forcing a mutual pair.
const MinParticipants = 3

// DrawService generates the giver→receiver assignment set.
type DrawService struct {
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
	notifier       Notifier
}

// NewDrawService creates a new DrawService. The notifier may be nil, in
// which case no assignment messages are published.
func NewDrawService(userRepo repositories.UserRepository, assignmentRepo repositories.AssignmentRepository, notifier Notifier) *DrawService {
	return &DrawService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
	}
}

// DrawResult reports a completed generation: the giver→receiver mapping
// and the notification tallies.
type DrawResult struct {
	Pairs               map[string]string `json:"pairs"`
	NotificationsSent   int               `json:"notifications_sent"`
	NotificationsFailed int               `json:"notifications_failed"`
}

// GenerateAssignments replaces the whole assignment set with a fresh
// derangement of the current draw participants. Regeneration is the same
// operation; there is no incremental edit of edges.
//
// The mapping is built by uniformly shuffling the participants and
// assigning each one the next participant in the shuffled order. The
// result is a single n-cycle: nobody draws themselves and, for three or
// more participants, no two users can draw each other.
func (s *DrawService) GenerateAssignments() (*DrawResult, error) {
	participants, err := s.userRepo.GetParticipants()
	if err != nil {
		return nil, err
	}
	if len(participants) < MinParticipants {
		return nil, ErrInsufficientParticipants
	}

	shuffled := make([]models.User, len(participants))
	copy(shuffled, participants)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	edges := make([]models.Assignment, 0, n)
	pairs := make(map[string]string, n)
	for i := range shuffled {
		giver := shuffled[i]
		receiver := shuffled[(i+1)%n]
		edges = append(edges, models.Assignment{
			ID:         uuid.New().String(),
			GiverID:    giver.ID,
			ReceiverID: receiver.ID,
		})
		pairs[giver.ID] = receiver.ID
	}

	if err := s.assignmentRepo.ReplaceAll(edges); err != nil {
		return nil, err
	}
	if err := s.verifyAssignmentSet(participants); err != nil {
		return nil, err
	}

	result := &DrawResult{Pairs: pairs}
	s.notifyGivers(shuffled, result)
	return result, nil
}

// verifyAssignmentSet re-reads the stored edges and checks the bijection
// invariants. If the store could not apply the replacement as a unit the
// check fails and the caller gets ErrPartialWrite instead of a silent
// mixed old/new state.
func (s *DrawService) verifyAssignmentSet(participants []models.User) error {
	stored, err := s.assignmentRepo.GetAll()
	if err != nil {
		return err
	}
	if len(stored) != len(participants) {
		return ErrPartialWrite
	}

	inDraw := make(map[string]bool, len(participants))
	for _, p := range participants {
		inDraw[p.ID] = true
	}
	givers := make(map[string]bool, len(stored))
	receivers := make(map[string]bool, len(stored))
	for _, e := range stored {
		if e.GiverID == e.ReceiverID {
			return ErrPartialWrite
		}
		if !inDraw[e.GiverID] || !inDraw[e.ReceiverID] {
			return ErrPartialWrite
		}
		if givers[e.GiverID] || receivers[e.ReceiverID] {
			return ErrPartialWrite
		}
		givers[e.GiverID] = true
		receivers[e.ReceiverID] = true
	}
	return nil
}

// notifyGivers publishes one "you drew X" message per giver. Failures are
// counted and logged; one recipient failing never stops the rest and
// never fails the draw itself.
func (s *DrawService) notifyGivers(shuffled []models.User, result *DrawResult) {
	if s.notifier == nil {
		return
	}
	n := len(shuffled)
	for i := range shuffled {
		giver := shuffled[i]
		receiver := shuffled[(i+1)%n]
		err := s.notifier.PublishNotification("assignment", giver.Email, map[string]string{
			"giver_handle":    giver.Handle,
			"receiver_handle": receiver.Handle,
		})
		if err != nil {
			log.Printf("Warning: failed to publish assignment notification for %s: %v", giver.Handle, err)
			result.NotificationsFailed++
			continue
		}
		result.NotificationsSent++
	}
}

// GetAssignmentFor returns the receiver assigned to the given giver.
func (s *DrawService) GetAssignmentFor(giverID string) (*models.User, error) {
	edge, err := s.assignmentRepo.GetByGiver(giverID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(edge.ReceiverID)
}
