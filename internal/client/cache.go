// Package client holds the client-side cache of application state. Mutating
// calls go through a snapshot/apply/reconcile protocol: the cache reflects
// the expected outcome immediately and is rolled back wholesale if the
// server call fails.
package client

import (
	"fmt"
	"sync"

	"clubreg-backend/internal/domain"
)

// Cache keys, used to mark entries stale for refetch after a confirmed
// mutation.
func DetailKey(id int64) string  { return fmt.Sprintf("application:%d", id) }
func HistoryKey(id int64) string { return fmt.Sprintf("history:%d", id) }

const (
	ListKey  = "applications:list"
	StatsKey = "applications:stats"
)

type Cache struct {
	mu    sync.Mutex
	apps  map[int64]*domain.ClubApplication
	stats *domain.ApplicationStats
	stale map[string]bool
}

func NewCache() *Cache {
	return &Cache{
		apps:  map[int64]*domain.ClubApplication{},
		stale: map[string]bool{},
	}
}

func (c *Cache) PutApplication(app *domain.ClubApplication) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *app
	c.apps[app.ID] = &cp
	delete(c.stale, DetailKey(app.ID))
}

func (c *Cache) GetApplication(id int64) (*domain.ClubApplication, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	app, ok := c.apps[id]
	if !ok {
		return nil, false
	}
	cp := *app
	return &cp, true
}

func (c *Cache) PutStats(stats *domain.ApplicationStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *stats
	c.stats = &cp
	delete(c.stale, StatsKey)
}

func (c *Cache) GetStats() (*domain.ApplicationStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return nil, false
	}
	cp := *c.stats
	return &cp, true
}

// IsStale reports whether a key needs a refetch after a confirmed mutation.
func (c *Cache) IsStale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale[key]
}

// snapshot captures the pre-mutation state of one decision, so rollback is
// mechanical rather than ad hoc.
type snapshot struct {
	appID    int64
	app      *domain.ClubApplication
	hadApp   bool
	stats    *domain.ApplicationStats
	hadStats bool
}

func (c *Cache) take(id int64) *snapshot {
	s := &snapshot{appID: id}
	if app, ok := c.apps[id]; ok {
		cp := *app
		s.app = &cp
		s.hadApp = true
	}
	if c.stats != nil {
		cp := *c.stats
		s.stats = &cp
		s.hadStats = true
	}
	return s
}

func (c *Cache) restore(s *snapshot) {
	if s.hadApp {
		c.apps[s.appID] = s.app
	} else {
		delete(c.apps, s.appID)
	}
	if s.hadStats {
		c.stats = s.stats
	} else {
		c.stats = nil
	}
}

// speculate flips the cached entry to the expected post-transition state.
func (c *Cache) speculate(id int64, status domain.ApplicationStatus) {
	if app, ok := c.apps[id]; ok && app.Status == domain.ApplicationStatusPending {
		app.Status = status
		if c.stats != nil {
			c.stats.Pending--
			switch status {
			case domain.ApplicationStatusApproved:
				c.stats.Approved++
			case domain.ApplicationStatusRejected:
				c.stats.Rejected++
			}
		}
	}
}

// Decide wraps a server decision call with the three-phase protocol:
// snapshot, speculative apply, reconcile. On success the affected keys are
// marked stale for refetch. On failure the snapshot is restored exactly;
// the rollback is all-or-nothing. Overlapping calls against the same entity
// are not coalesced, so the last snapshot taken wins as the rollback target.
func (c *Cache) Decide(id int64, status domain.ApplicationStatus, call func() error) error {
	c.mu.Lock()
	snap := c.take(id)
	c.speculate(id, status)
	c.mu.Unlock()

	err := call()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.restore(snap)
		return err
	}

	for _, key := range []string{DetailKey(id), HistoryKey(id), ListKey, StatsKey} {
		c.stale[key] = true
	}
	return nil
}
