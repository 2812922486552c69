package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aidar/task-tracker/internal/domain"
)

// AssigneeSelector picks an assignee for a task among project members
type AssigneeSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssigneeSelector creates a new AssigneeSelector with its own random source
func NewAssigneeSelector() *AssigneeSelector {
	return NewAssigneeSelectorWithSeed(time.Now().UnixNano())
}

// NewAssigneeSelectorWithSeed creates a selector with a fixed seed
func NewAssigneeSelectorWithSeed(seed int64) *AssigneeSelector {
	return &AssigneeSelector{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SelectAssignee randomly selects one member, excluding the given user IDs
func (s *AssigneeSelector) SelectAssignee(members []domain.User, exclude ...string) (*domain.User, error) {
	available := make([]domain.User, 0, len(members))
	for _, member := range members {
		excluded := false
		for _, id := range exclude {
			if member.UserID == id {
				excluded = true
				break
			}
		}
		if !excluded {
			available = append(available, member)
		}
	}

	if len(available) == 0 {
		return nil, domain.ErrNoCandidate
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(available))
	s.mu.Unlock()

	selected := available[idx]
	return &selected, nil
}
