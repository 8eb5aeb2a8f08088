package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"launchdeck/internal/logger"
)

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "apps_data.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{}"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := New(dataFile, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger.Nop{})
	require.NoError(t, err)
	defer w.Shutdown()

	require.NoError(t, os.WriteFile(dataFile, []byte(`{"apps": {}}`), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "apps_data.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{}"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := New(dataFile, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger.Nop{})
	require.NoError(t, err)
	defer w.Shutdown()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
