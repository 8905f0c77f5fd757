package tui

import (
	"sync"
	"time"
)

// sessionInfo describes one connected SSH player.
type sessionInfo struct {
	User    string
	Remote  string
	Started time.Time
}

// sessionRegistry tracks active SSH sessions and enforces a connection limit.
// Thread-safe for concurrent access.
type sessionRegistry struct {
	mu       sync.RWMutex
	nextID   uint64
	limit    int // 0 means unlimited
	sessions map[uint64]sessionInfo
}

func newSessionRegistry(limit int) *sessionRegistry {
	return &sessionRegistry{
		limit:    limit,
		sessions: make(map[uint64]sessionInfo),
	}
}

// register adds a session. It returns false when the server is full.
func (r *sessionRegistry) register(info sessionInfo) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return 0, false
	}
	r.nextID++
	r.sessions[r.nextID] = info
	return r.nextID, true
}

// unregister removes a session. Unknown IDs are ignored.
func (r *sessionRegistry) unregister(id uint64) (sessionInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.sessions[id]
	delete(r.sessions, id)
	return info, ok
}

// count returns the number of active sessions.
func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
