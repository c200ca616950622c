package compare

import (
	"testing"
	"time"

	"pricescout/internal/models"
)

func TestKeyPlatformOrderInsensitive(t *testing.T) {
	a := Key("galaxy s21", []string{"flipkart", "amazon"})
	b := Key("galaxy s21", []string{"amazon", "flipkart"})
	if a != b {
		t.Errorf("Key differs by platform order: %q vs %q", a, b)
	}
}

func TestKeyDeduplicates(t *testing.T) {
	a := Key("galaxy s21", []string{"amazon", "Amazon", "amazon"})
	b := Key("galaxy s21", []string{"amazon"})
	if a != b {
		t.Errorf("Key differs for duplicated platforms: %q vs %q", a, b)
	}
}

func TestCacheHitAndExpiry(t *testing.T) {
	cache := NewResultCache(30 * time.Minute)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	key := Key("galaxy s21", []string{"amazon"})
	result := models.ComparisonResult{BestPlatform: "amazon", Timestamp: clock}
	cache.Put(key, result)

	if got, ok := cache.Get(key); !ok || got.BestPlatform != "amazon" {
		t.Fatalf("Get after Put = (%+v, %v); want hit", got, ok)
	}

	// Just inside the window
	clock = clock.Add(29 * time.Minute)
	if _, ok := cache.Get(key); !ok {
		t.Error("entry expired before configured duration")
	}

	// Past the window: treated as absent
	clock = clock.Add(2 * time.Minute)
	if _, ok := cache.Get(key); ok {
		t.Error("stale entry served after configured duration")
	}

	// Recomputation overwrites the expired slot
	cache.Put(key, models.ComparisonResult{BestPlatform: "flipkart", Timestamp: clock})
	if got, ok := cache.Get(key); !ok || got.BestPlatform != "flipkart" {
		t.Errorf("Get after overwrite = (%+v, %v); want fresh entry", got, ok)
	}
}

func TestCacheMissUnknownKey(t *testing.T) {
	cache := NewResultCache(time.Minute)
	if _, ok := cache.Get("nope"); ok {
		t.Error("Get on empty cache reported a hit")
	}
}
