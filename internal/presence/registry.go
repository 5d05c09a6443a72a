// Package presence tracks which users have live websocket connections.
// A user may hold several connections at once (tabs, devices); they
// count as online while at least one remains.
package presence

import "sync"

type Registry struct {
	mu    sync.RWMutex
	conns map[string]map[string]struct{} // userID -> set of connection IDs
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]map[string]struct{})}
}

// Add registers a connection and reports whether it is the user's
// first one (the offline -> online edge).
func (r *Registry) Add(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[string]struct{})
		r.conns[userID] = set
	}
	set[connID] = struct{}{}
	return len(set) == 1
}

// Remove drops a connection and reports whether it was the user's last
// one (the online -> offline edge). Removing an unknown connection is
// a no-op.
func (r *Registry) Remove(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return false
	}
	if _, ok := set[connID]; !ok {
		return false
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(r.conns, userID)
		return true
	}
	return false
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[userID]) > 0
}

// ConnectionCount returns the user's live connection count.
func (r *Registry) ConnectionCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[userID])
}

// OnlineCount returns how many distinct users are online.
func (r *Registry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
