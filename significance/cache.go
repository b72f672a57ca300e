// SPDX-License-Identifier: MIT

package significance

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/katalvlaran/hetmat/hetnet"
)

// DefaultCacheSize bounds a Cache created with size <= 0.
const DefaultCacheSize = 128

// Cache holds degree-group summaries per (metapath, damping). A metapath and
// its inverse share one entry.
type Cache struct {
	lru *lru.Cache[string, map[DegreePair]Summary]
}

// NewCache returns an LRU cache of at most size entries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, map[DegreePair]Summary](size)
	if err != nil {
		return nil, fmt.Errorf("significance: cache: %w", err)
	}

	return &Cache{lru: c}, nil
}

func cacheKey(mp *hetnet.MetaPath, damping float64) string {
	return mp.Abbrev() + "|" + strconv.FormatFloat(damping, 'g', -1, 64)
}

// Get returns the summaries of mp at damping. When only the inverse metapath
// is cached its summaries are returned transposed.
func (c *Cache) Get(mp *hetnet.MetaPath, damping float64) (map[DegreePair]Summary, bool) {
	if s, ok := c.lru.Get(cacheKey(mp, damping)); ok {
		return s, true
	}
	if s, ok := c.lru.Get(cacheKey(mp.Inverse(), damping)); ok {
		return Transpose(s), true
	}

	return nil, false
}

// Add stores summaries for mp at damping. The map must not be modified
// afterwards.
func (c *Cache) Add(mp *hetnet.MetaPath, damping float64, summaries map[DegreePair]Summary) {
	c.lru.Add(cacheKey(mp, damping), summaries)
}

// Purge drops every entry. Call it when the permutation set changes.
func (c *Cache) Purge() { c.lru.Purge() }

// Len reports the number of cached entries.
func (c *Cache) Len() int { return c.lru.Len() }

// Transpose swaps source and target degrees of every group.
func Transpose(s map[DegreePair]Summary) map[DegreePair]Summary {
	out := make(map[DegreePair]Summary, len(s))
	for k, v := range s {
		out[DegreePair{Source: k.Target, Target: k.Source}] = v
	}

	return out
}
