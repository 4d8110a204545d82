package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository maps opaque session tokens to venue ids. Sessions live in
// process memory only; a restart logs everyone out, which is acceptable for
// dashboard access.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(token string, venueId uuid.UUID) {
	r.cache.Set(token, venueId, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(token string) (uuid.UUID, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

func (r *SessionRepository) Delete(token string) {
	r.cache.Delete(token)
}
