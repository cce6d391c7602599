package api

import (
	"sync"
)

// DetailCache keeps character details by id for the lifetime of the process
type DetailCache struct {
	mu   sync.RWMutex
	data map[string]*CharacterDetail
}

// NewDetailCache creates an empty DetailCache
func NewDetailCache() *DetailCache {
	return &DetailCache{
		data: make(map[string]*CharacterDetail),
	}
}

// Get retrieves a cached detail
func (c *DetailCache) Get(id string) (*CharacterDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.data[id]
	return val, ok
}

// Set stores a detail, replacing any previous entry for the id
func (c *DetailCache) Set(id string, val *CharacterDetail) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[id] = val
}

// Len returns the number of cached details
func (c *DetailCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
