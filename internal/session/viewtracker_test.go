package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryViewTracker(t *testing.T) {
	tracker := NewMemoryViewTracker()

	assert.False(t, tracker.Seen("sess-a", 1))

	tracker.MarkSeen("sess-a", 1)
	assert.True(t, tracker.Seen("sess-a", 1))

	// Markers are scoped per session and per article.
	assert.False(t, tracker.Seen("sess-b", 1))
	assert.False(t, tracker.Seen("sess-a", 2))
}

func TestMemoryViewTrackerConcurrent(t *testing.T) {
	tracker := NewMemoryViewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("sess-%d", i)
			tracker.MarkSeen(sid, uint(i))
			assert.True(t, tracker.Seen(sid, uint(i)))
		}(i)
	}
	wg.Wait()
}

func TestMarkerKey(t *testing.T) {
	assert.Equal(t, "session:abc:viewed:7", markerKey("abc", 7))
}
