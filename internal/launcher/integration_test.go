package launcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdeck/internal/logger"
	"launchdeck/internal/store"
)

// Walks the register → add → toggle → launch path end to end against a
// real store on disk.
func TestDisabledGroupLaunchesNothing(t *testing.T) {
	registry := store.Open(filepath.Join(t.TempDir(), "apps_data.json"), logger.Nop{})
	groupID := registry.ActiveGroup().ID

	const path = `C:\tools\x.exe`
	require.NoError(t, registry.Register(path))
	assert.Equal(t, "x", registry.DisplayName(path))

	require.NoError(t, registry.AddEntry(groupID, path))
	group := registry.ActiveGroup()
	require.Len(t, group.Entries, 1)
	assert.Equal(t, path, group.Entries[0].Path)
	assert.True(t, group.Entries[0].Enabled)

	require.NoError(t, registry.ToggleEntry(groupID, 0))
	assert.False(t, registry.ActiveGroup().Entries[0].Enabled)

	runner := &fakeRunner{}
	d := NewDispatcher(runner, registry.DisplayName, logger.Nop{})
	result := d.LaunchMany(registry.EnabledPaths(groupID))

	assert.Zero(t, result.Launched)
	assert.Empty(t, result.Failures)
	assert.Empty(t, runner.opened)
}
