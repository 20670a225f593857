package memory

import (
	"time"

	"rednote-trend-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live conversation sessions in process memory.
// There is deliberately no persistence: a session lives for the process (or
// until the idle TTL evicts it).
type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates the in-memory store. ttl bounds how long an
// idle conversation survives; expired entries are purged every ten minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
