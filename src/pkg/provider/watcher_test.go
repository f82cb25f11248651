package provider_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sample-gallery/urigen/src/pkg/prefs"
	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/stretchr/testify/require"
)

func TestWatchTemplatesReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("landscape:\n  - http://example.com/old_%s.jpg\n"), 0644))

	templates, err := provider.LoadTemplates(path)
	require.NoError(t, err)

	p := provider.New(prefs.NewMemoryStore(),
		provider.WithTemplates(templates),
		provider.WithRand(fixedRand{}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- provider.WatchTemplates(ctx, path, p)
	}()

	// Give the watcher time to register before rewriting the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("landscape:\n  - http://example.com/new_%s.jpg\n"), 0644))

	require.Eventually(t, func() bool {
		uri, uriErr := p.SampleURI(provider.SizeM, provider.Landscape, provider.ModNone)
		return uriErr == nil && uri == "http://example.com/new_m.jpg"
	}, 5*time.Second, 50*time.Millisecond, "watcher should pick up the rewritten template file")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestWatchTemplatesKeepsLastGoodSetOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("landscape:\n  - http://example.com/good_%s.jpg\n"), 0644))

	templates, err := provider.LoadTemplates(path)
	require.NoError(t, err)

	p := provider.New(prefs.NewMemoryStore(),
		provider.WithTemplates(templates),
		provider.WithRand(fixedRand{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- provider.WatchTemplates(ctx, path, p)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("landscape: [unbalanced"), 0644))
	time.Sleep(500 * time.Millisecond)

	uri, uriErr := p.SampleURI(provider.SizeM, provider.Landscape, provider.ModNone)
	require.NoError(t, uriErr)
	require.Equal(t, "http://example.com/good_m.jpg", uri)
}
