package cache

import (
	"sync"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/quiz"
)

type entry struct {
	session  *quiz.Session
	lastSeen time.Time
}

// Sessions holds the active attempt per user. An abandoned session is
// evicted once it sits idle longer than the TTL, so nothing leaks when
// a user simply stops answering.
type Sessions struct {
	mu  sync.Mutex
	m   map[int64]*entry
	ttl time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		m:   make(map[int64]*entry),
		ttl: ttl,
	}
}

// Set starts tracking a session, replacing any previous attempt.
func (s *Sessions) Set(userID int64, session *quiz.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = &entry{session: session, lastSeen: time.Now()}
}

func (s *Sessions) Get(userID int64) (*quiz.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.m[userID]
	if !exists {
		return nil, false
	}
	if s.ttl > 0 && time.Since(e.lastSeen) > s.ttl {
		delete(s.m, userID)
		return nil, false
	}

	e.lastSeen = time.Now()
	return e.session, true
}

func (s *Sessions) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}

// Sweep drops idle sessions on the given interval until stop is closed.
func (s *Sessions) Sweep(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			for userID, e := range s.m {
				if s.ttl > 0 && time.Since(e.lastSeen) > s.ttl {
					delete(s.m, userID)
				}
			}
			s.mu.Unlock()
		}
	}
}
