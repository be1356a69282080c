package tmdb

import (
	"context"
	"sync"
)

// GenreSource fetches the genre list. *Client implements it.
type GenreSource interface {
	GetGenreMap(ctx context.Context) GenreMap
}

// GenreCache holds the genre map for the life of the process. It is
// written once by Load and read thereafter; construct one at startup and
// pass it to whatever needs genre names.
type GenreCache struct {
	mu     sync.RWMutex
	genres GenreMap
	loaded bool
}

// NewGenreCache returns an empty, unloaded cache.
func NewGenreCache() *GenreCache {
	return &GenreCache{genres: make(GenreMap)}
}

// Load fetches the genre map from src on the first call. Later calls are
// no-ops. A failed fetch leaves the cache empty but marked loaded, so a
// broken API is not hit again until the process restarts.
func (c *GenreCache) Load(ctx context.Context, src GenreSource) GenreMap {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.genres
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		if m := src.GetGenreMap(ctx); m != nil {
			c.genres = m
		}
		c.loaded = true
	}
	return c.genres
}

// Map returns the cached genre map. It is empty until Load has run.
func (c *GenreCache) Map() GenreMap {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.genres
}

// Names resolves genre ids against the cached map.
func (c *GenreCache) Names(ids []int) []string {
	return c.Map().Names(ids)
}

// Loaded reports whether Load has completed.
func (c *GenreCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
