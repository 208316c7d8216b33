package cno

// featureCache stores transformed feature sets by key.
//
// Entries never expire and are never invalidated: a cached set is returned
// as-is even if the file it came from has changed. The cache is not
// synchronized; the owning Loader documents the single-writer contract.
type featureCache struct {
	entries map[string]*FeatureSet
	hits    int
	misses  int
}

func newFeatureCache() *featureCache {
	return &featureCache{
		entries: make(map[string]*FeatureSet),
	}
}

// Get looks a key up, counting the hit or miss.
func (c *featureCache) Get(key string) (*FeatureSet, bool) {
	set, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return set, ok
}

// Add stores a set under key, replacing any previous entry.
func (c *featureCache) Add(key string, set *FeatureSet) {
	c.entries[key] = set
}

// Remove deletes one entry.
func (c *featureCache) Remove(key string) {
	delete(c.entries, key)
}

// Clear drops all entries. The hit and miss counters keep accumulating.
func (c *featureCache) Clear() {
	c.entries = make(map[string]*FeatureSet)
}

// Stats returns cache statistics.
func (c *featureCache) Stats() CacheStats {
	return CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// CacheStats holds cache performance metrics.
type CacheStats struct {
	Entries int // Number of feature sets currently cached
	Hits    int // Lookups served from the cache
	Misses  int // Lookups that fell through to a load
}

// HitRate returns the fraction of lookups served from the cache, or 0 when
// nothing has been looked up yet.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
