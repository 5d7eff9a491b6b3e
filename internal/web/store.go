package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/examai/internal/quizclient"
)

type storedSession struct {
	session  *quizclient.Session
	lastSeen time.Time
}

// SessionStore keeps quiz sessions in memory. Sessions idle for longer than idle are
// dropped on the next access to the store.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*storedSession
	idle     time.Duration
	now      func() time.Time
}

func NewSessionStore(idle time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*storedSession),
		idle:     idle,
		now:      time.Now,
	}
}

func (s *SessionStore) Get(id string) (*quizclient.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	stored, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	stored.lastSeen = now
	return stored.session, true
}

func (s *SessionStore) Create() (string, *quizclient.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	id := uuid.NewString()
	session := quizclient.NewSession()
	s.sessions[id] = &storedSession{session: session, lastSeen: now}
	return id, session
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) evictLocked(now time.Time) {
	if s.idle <= 0 {
		return
	}
	for id, stored := range s.sessions {
		// A generation in flight keeps its session alive.
		if stored.session.Phase() == quizclient.PhaseLoading {
			continue
		}
		if now.Sub(stored.lastSeen) > s.idle {
			delete(s.sessions, id)
		}
	}
}
