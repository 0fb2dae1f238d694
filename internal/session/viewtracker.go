// Package session tracks which articles a browsing session has already
// viewed, so a reload never bumps the view counter twice.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lifetime bounds a session's dedup markers. A returning visitor with a
// fresh session (expired markers, cleared cookies) counts again.
const Lifetime = 14 * 24 * time.Hour

// ViewTracker answers "has this session already seen this article" and
// records first sightings.
type ViewTracker interface {
	Seen(sessionID string, articleID uint) bool
	MarkSeen(sessionID string, articleID uint)
}

func markerKey(sessionID string, articleID uint) string {
	return fmt.Sprintf("session:%s:viewed:%d", sessionID, articleID)
}

type redisViewTracker struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisViewTracker(client *redis.Client) ViewTracker {
	return &redisViewTracker{client: client, ctx: context.Background()}
}

func (t *redisViewTracker) Seen(sessionID string, articleID uint) bool {
	n, err := t.client.Exists(t.ctx, markerKey(sessionID, articleID)).Result()
	if err != nil {
		log.Printf("View marker lookup failed: %v", err)
		// Failing open would overcount on every redis hiccup; treat
		// unknown as seen.
		return true
	}
	return n > 0
}

func (t *redisViewTracker) MarkSeen(sessionID string, articleID uint) {
	if err := t.client.Set(t.ctx, markerKey(sessionID, articleID), 1, Lifetime).Err(); err != nil {
		log.Printf("Failed to set view marker: %v", err)
	}
}

// memoryViewTracker is the redis-less fallback, also used by tests. Markers
// live for the process lifetime.
type memoryViewTracker struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func NewMemoryViewTracker() ViewTracker {
	return &memoryViewTracker{seen: make(map[string]struct{})}
}

func (t *memoryViewTracker) Seen(sessionID string, articleID uint) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.seen[markerKey(sessionID, articleID)]
	return ok
}

func (t *memoryViewTracker) MarkSeen(sessionID string, articleID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[markerKey(sessionID, articleID)] = struct{}{}
}
