// Package favorites keeps the per-user set of bookmarked job ids.
package favorites

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalidJobID = errors.New("invalid job id")

// Store owns favorite membership. Toggle returns the membership after the
// change.
type Store interface {
	IsFavorite(ctx context.Context, userID uuid.UUID, jobID string) (bool, error)
	Toggle(ctx context.Context, userID uuid.UUID, jobID string) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}

func normalizeJobID(jobID string) (string, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return "", ErrInvalidJobID
	}
	return jobID, nil
}

type MemoryStore struct {
	mu   sync.RWMutex
	sets map[uuid.UUID]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: map[uuid.UUID]map[string]struct{}{}}
}

func (s *MemoryStore) IsFavorite(_ context.Context, userID uuid.UUID, jobID string) (bool, error) {
	jobID, err := normalizeJobID(jobID)
	if err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sets[userID][jobID]
	return ok, nil
}

func (s *MemoryStore) Toggle(_ context.Context, userID uuid.UUID, jobID string) (bool, error) {
	jobID, err := normalizeJobID(jobID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[userID]
	if set == nil {
		set = map[string]struct{}{}
		s.sets[userID] = set
	}
	if _, ok := set[jobID]; ok {
		delete(set, jobID)
		return false, nil
	}
	set[jobID] = struct{}{}
	return true, nil
}

func (s *MemoryStore) List(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.sets[userID]))
	for id := range s.sets[userID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
