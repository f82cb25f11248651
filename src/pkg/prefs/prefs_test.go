package prefs_test

import (
	"testing"

	"github.com/sample-gallery/urigen/src/pkg/prefs"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	store, err := prefs.NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if err := store.SetString("uri_override", "https://example.com/x.jpg"); err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}
	got, err := store.GetString("uri_override", "")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}
	if got != "https://example.com/x.jpg" {
		t.Errorf("GetString = %q, want %q", got, "https://example.com/x.jpg")
	}

	if err := store.SetBool("uri_cache_breaking", true); err != nil {
		t.Fatalf("Failed to set bool: %v", err)
	}
	flag, err := store.GetBool("uri_cache_breaking", false)
	if err != nil {
		t.Fatalf("Failed to get bool: %v", err)
	}
	if !flag {
		t.Error("GetBool = false, want true")
	}
}

func TestBadgerStoreDefaults(t *testing.T) {
	store, err := prefs.NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	flag, err := store.GetBool("uri_cache_breaking", false)
	if err != nil {
		t.Fatalf("Failed to get bool: %v", err)
	}
	if flag {
		t.Error("GetBool for missing key should return fallback false")
	}

	value, err := store.GetString("uri_override", "fallback")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}
	if value != "fallback" {
		t.Errorf("GetString for missing key = %q, want fallback", value)
	}
}

func TestBadgerStoreRemove(t *testing.T) {
	store, err := prefs.NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if err := store.SetString("uri_override", "https://example.com/x.jpg"); err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}
	if err := store.Remove("uri_override"); err != nil {
		t.Fatalf("Failed to remove key: %v", err)
	}
	value, err := store.GetString("uri_override", "")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}
	if value != "" {
		t.Errorf("GetString after Remove = %q, want empty", value)
	}

	// Removing a missing key is not an error
	if err := store.Remove("uri_override"); err != nil {
		t.Fatalf("Remove of missing key failed: %v", err)
	}
}

func TestBadgerStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := prefs.NewBadgerStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.SetString("uri_override", "https://example.com/x.jpg"); err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}
	if err := store.SetBool("uri_cache_breaking", true); err != nil {
		t.Fatalf("Failed to set bool: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}

	reopened, err := prefs.NewBadgerStore(dir)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, err := reopened.GetString("uri_override", "")
	if err != nil {
		t.Fatalf("Failed to get string after reopen: %v", err)
	}
	if value != "https://example.com/x.jpg" {
		t.Errorf("GetString after reopen = %q, want persisted value", value)
	}
	flag, err := reopened.GetBool("uri_cache_breaking", false)
	if err != nil {
		t.Fatalf("Failed to get bool after reopen: %v", err)
	}
	if !flag {
		t.Error("GetBool after reopen = false, want true")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := prefs.NewMemoryStore()
	defer store.Close()

	if err := store.SetBool("uri_cache_breaking", true); err != nil {
		t.Fatalf("Failed to set bool: %v", err)
	}
	flag, err := store.GetBool("uri_cache_breaking", false)
	if err != nil {
		t.Fatalf("Failed to get bool: %v", err)
	}
	if !flag {
		t.Error("GetBool = false, want true")
	}

	if err := store.SetString("uri_override", "https://example.com/x.jpg"); err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}
	if err := store.Remove("uri_override"); err != nil {
		t.Fatalf("Failed to remove key: %v", err)
	}
	value, err := store.GetString("uri_override", "")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}
	if value != "" {
		t.Errorf("GetString after Remove = %q, want empty", value)
	}
}
