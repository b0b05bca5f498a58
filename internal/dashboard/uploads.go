package dashboard

import (
	"sync"
	"time"

	"sitetwin/internal/model"
)

type cachedUpload struct {
	filename  string
	rows      []model.EVARow
	expiresAt time.Time
}

// uploadCache parsed EVA uploads keyed by upload id, dropped after ttl
type uploadCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]cachedUpload
}

func newUploadCache(ttl time.Duration, now func() time.Time) *uploadCache {
	if now == nil {
		now = time.Now
	}
	return &uploadCache{
		ttl:   ttl,
		now:   now,
		items: make(map[string]cachedUpload),
	}
}

func (c *uploadCache) put(id, filename string, rows []model.EVARow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.purgeExpiredLocked(now)
	c.items[id] = cachedUpload{
		filename:  filename,
		rows:      rows,
		expiresAt: now.Add(c.ttl),
	}
}

func (c *uploadCache) get(id string) (cachedUpload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.purgeExpiredLocked(now)

	v, ok := c.items[id]
	return v, ok
}

func (c *uploadCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *uploadCache) purgeExpiredLocked(now time.Time) {
	for k, v := range c.items {
		if !now.Before(v.expiresAt) {
			delete(c.items, k)
		}
	}
}
