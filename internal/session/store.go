// Package session is the short-lived, per-visitor key/value store used to
// hand scroll position and the previous path to the "back" navigation.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	KeyScrollPosition = "scrollPosition"
	KeyPreviousPath   = "previousPath"
	KeyBlogDraft      = "blogDraft"

	DefaultTTL = 30 * time.Minute
)

var ErrInvalidSession = errors.New("invalid session id")

type Store interface {
	Set(ctx context.Context, sessionID, key, value string) error
	// Get returns ok=false when the key or the whole session is gone.
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
}

func validSessionID(id string) bool {
	return strings.TrimSpace(id) != ""
}

type memoryEntry struct {
	values    map[string]string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired sessions are invisible to Get
// immediately and physically removed by the sweeper.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time

	cron   *cron.Cron
	logger *log.Logger
}

func NewMemoryStore(ttl time.Duration, logger *log.Logger) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: map[string]*memoryEntry{},
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	if !validSessionID(sessionID) {
		return ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.sessions[sessionID]
	if e == nil || !now.Before(e.expiresAt) {
		e = &memoryEntry{values: map[string]string{}}
		s.sessions[sessionID] = e
	}
	e.values[key] = value
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	if !validSessionID(sessionID) {
		return "", false, ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.sessions[sessionID]
	if e == nil || !s.now().Before(e.expiresAt) {
		return "", false, nil
	}
	v, ok := e.values[key]
	return v, ok, nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper schedules Sweep with a cron spec such as "@every 5m".
func (s *MemoryStore) StartSweeper(spec string) error {
	if strings.TrimSpace(spec) == "" {
		spec = "@every 5m"
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 && s.logger != nil {
			s.logger.Printf("[Session] swept %d expired session(s)", n)
		}
	}); err != nil {
		return err
	}
	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()
	c.Start()
	return nil
}

func (s *MemoryStore) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}
