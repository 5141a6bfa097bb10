package application

import (
	"strings"
	"sync"

	"github.com/lcollet/schemapick/internal/domain"
)

// SessionCache records organizations whose schema was fetched during this
// process lifetime. Membership only grows: entries are never expired or
// invalidated, so a given organization is fetched over the network at most
// once per process. The remote side offers no version signal, hence no TTL.
// Keys are lowercased so the same organization reached under different
// casings hits the same entry, matching OrganizationName.Equal.
type SessionCache struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewSessionCache() *SessionCache {
	return &SessionCache{seen: make(map[string]struct{})}
}

func (c *SessionCache) Seen(org domain.OrganizationName) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.seen[cacheKey(org)]
	return ok
}

func (c *SessionCache) Add(org domain.OrganizationName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seen[cacheKey(org)] = struct{}{}
}

func cacheKey(org domain.OrganizationName) string {
	return strings.ToLower(string(org))
}
