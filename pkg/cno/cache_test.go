package cno

import "testing"

func TestCacheHitMiss(t *testing.T) {
	cache := newFeatureCache()
	set := NewFeatureSet([]Feature{feat(0, 0, 1, 1)})

	if _, ok := cache.Get("coast"); ok {
		t.Fatal("Expected miss on empty cache")
	}

	cache.Add("coast", set)

	got, ok := cache.Get("coast")
	if !ok {
		t.Fatal("Expected hit after Add")
	}
	if got != set {
		t.Error("Expected cached pointer returned unchanged")
	}

	stats := cache.Stats()
	if stats.Entries != 1 {
		t.Errorf("Expected 1 entry, got %d", stats.Entries)
	}
	if stats.Hits != 1 {
		t.Errorf("Expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
}

func TestCacheReplace(t *testing.T) {
	cache := newFeatureCache()
	first := NewFeatureSet([]Feature{feat(0, 0, 1, 1)})
	second := NewFeatureSet([]Feature{feat(2, 2, 3, 3)})

	cache.Add("coast", first)
	cache.Add("coast", second)

	got, ok := cache.Get("coast")
	if !ok {
		t.Fatal("Expected hit")
	}
	if got != second {
		t.Error("Expected later Add to replace earlier entry")
	}
	if stats := cache.Stats(); stats.Entries != 1 {
		t.Errorf("Expected 1 entry, got %d", stats.Entries)
	}
}

func TestCacheRemove(t *testing.T) {
	cache := newFeatureCache()
	cache.Add("coast", NewFeatureSet(nil))
	cache.Add("lakes", NewFeatureSet(nil))

	cache.Remove("coast")

	if _, ok := cache.Get("coast"); ok {
		t.Error("Expected removed key to miss")
	}
	if _, ok := cache.Get("lakes"); !ok {
		t.Error("Expected unrelated key to survive Remove")
	}
}

func TestCacheClearKeepsCounters(t *testing.T) {
	cache := newFeatureCache()
	cache.Add("coast", NewFeatureSet(nil))
	cache.Get("coast")
	cache.Get("missing")

	cache.Clear()

	stats := cache.Stats()
	if stats.Entries != 0 {
		t.Errorf("Expected 0 entries after Clear, got %d", stats.Entries)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Expected counters to survive Clear, got %d hits %d misses",
			stats.Hits, stats.Misses)
	}

	// Counters keep accumulating across the Clear.
	cache.Get("coast")
	if stats := cache.Stats(); stats.Misses != 2 {
		t.Errorf("Expected 2 misses, got %d", stats.Misses)
	}
}

func TestCacheHitRate(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		misses int
		want   float64
	}{
		{"NoLookups", 0, 0, 0},
		{"AllHits", 4, 0, 1},
		{"AllMisses", 0, 4, 0},
		{"Mixed", 3, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := CacheStats{Hits: tt.hits, Misses: tt.misses}
			if got := stats.HitRate(); got != tt.want {
				t.Errorf("Expected hit rate %v, got %v", tt.want, got)
			}
		})
	}
}
