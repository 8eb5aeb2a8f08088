package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdeck/internal/logger"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "apps_data.json"), logger.Nop{})
}

func TestOpenMissingFile(t *testing.T) {
	s := tempStore(t)

	doc := s.Snapshot()
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, DefaultGroupName, doc.Groups[0].Name)
	assert.NotEmpty(t, doc.Groups[0].ID)
	assert.Equal(t, doc.Groups[0].ID, doc.ActiveGroupID)
	assert.Empty(t, doc.Apps)
}

func TestOpenCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "{not json"},
		{"wrong type", `"just a string"`},
		{"missing groups", `{"apps": {}}`},
		{"empty groups", `{"apps": {}, "groups": []}`},
		{"null group", `{"apps": {}, "groups": [null], "active_group_id": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "apps_data.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s := Open(path, logger.Nop{})
			doc := s.Snapshot()
			require.Len(t, doc.Groups, 1)
			assert.Equal(t, DefaultGroupName, doc.Groups[0].Name)
			assert.Empty(t, doc.Apps)
		})
	}
}

func TestOpenCoercesMalformedApps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_data.json")
	content := `{
		"apps": ["not", "a", "mapping"],
		"groups": [{"id": "g1", "name": "Work", "entries": [{"path": "/opt/x"}]}],
		"active_group_id": "g1"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := Open(path, logger.Nop{})
	doc := s.Snapshot()
	assert.Empty(t, doc.Apps)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, "Work", doc.Groups[0].Name)
	// Registry miss falls back to the path stem.
	assert.Equal(t, "x", doc.DisplayName("/opt/x"))
}

func TestEntryEnabledDefaultsTrue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_data.json")
	content := `{
		"apps": {},
		"groups": [{"id": "g1", "name": "Work", "entries": [
			{"path": "/opt/a"},
			{"path": "/opt/b", "enabled": false}
		]}],
		"active_group_id": "g1"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := Open(path, logger.Nop{})
	entries := s.Snapshot().Groups[0].Entries
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Enabled)
	assert.False(t, entries[1].Enabled)
}

func TestRegisterIdempotent(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Register(`C:\tools\x.exe`))
	require.NoError(t, s.RenameApp(`C:\tools\x.exe`, "My Tool"))
	require.NoError(t, s.Register(`C:\tools\x.exe`))

	doc := s.Snapshot()
	require.Len(t, doc.Apps, 1)
	assert.Equal(t, "My Tool", doc.Apps[`C:\tools\x.exe`].Name)
}

func TestRegisterDerivesStemName(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Register(`C:\tools\x.exe`))
	assert.Equal(t, "x", s.DisplayName(`C:\tools\x.exe`))
}

func TestAddEntryUniquePerGroup(t *testing.T) {
	s := tempStore(t)
	groupID := s.ActiveGroup().ID

	require.NoError(t, s.AddEntry(groupID, "/opt/a"))
	require.NoError(t, s.AddEntry(groupID, "/opt/a"))

	group := s.ActiveGroup()
	require.Len(t, group.Entries, 1)
	assert.Equal(t, "/opt/a", group.Entries[0].Path)
	assert.True(t, group.Entries[0].Enabled)
}

func TestAddEntryIndependentAcrossGroups(t *testing.T) {
	s := tempStore(t)
	first := s.ActiveGroup()
	second, err := s.CreateGroup("Second")
	require.NoError(t, err)

	require.NoError(t, s.AddEntry(first.ID, "/opt/a"))
	require.NoError(t, s.AddEntry(second.ID, "/opt/a"))
	require.NoError(t, s.ToggleEntry(second.ID, 0))

	doc := s.Snapshot()
	assert.True(t, doc.Groups[0].Entries[0].Enabled)
	assert.False(t, doc.Groups[1].Entries[0].Enabled)
}

func TestRemoveEntryKeepsApp(t *testing.T) {
	s := tempStore(t)
	groupID := s.ActiveGroup().ID

	require.NoError(t, s.Register("/opt/a"))
	require.NoError(t, s.AddEntry(groupID, "/opt/a"))
	require.NoError(t, s.RemoveEntry(groupID, 0))

	doc := s.Snapshot()
	assert.Empty(t, doc.Groups[0].Entries)
	assert.Contains(t, doc.Apps, "/opt/a")
}

func TestRemoveEntryBadIndex(t *testing.T) {
	s := tempStore(t)
	groupID := s.ActiveGroup().ID

	assert.ErrorIs(t, s.RemoveEntry(groupID, 0), ErrBadIndex)
	assert.ErrorIs(t, s.RemoveEntry(groupID, -1), ErrBadIndex)
	assert.ErrorIs(t, s.RemoveEntry("nope", 0), ErrGroupNotFound)
}

func TestDeleteLastGroupRefused(t *testing.T) {
	s := tempStore(t)
	assert.ErrorIs(t, s.DeleteGroup(s.ActiveGroup().ID), ErrLastGroup)
	assert.Len(t, s.Snapshot().Groups, 1)
}

func TestDeleteGroupReassignsActive(t *testing.T) {
	s := tempStore(t)
	first := s.ActiveGroup()
	second, err := s.CreateGroup("Second")
	require.NoError(t, err)
	require.Equal(t, second.ID, s.Snapshot().ActiveGroupID)

	require.NoError(t, s.DeleteGroup(second.ID))

	doc := s.Snapshot()
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, first.ID, doc.ActiveGroupID)
}

func TestReorderSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_data.json")
	s := Open(path, logger.Nop{})
	groupID := s.ActiveGroup().ID

	require.NoError(t, s.AddEntry(groupID, "/opt/a"))
	require.NoError(t, s.AddEntry(groupID, "/opt/b"))
	require.NoError(t, s.AddEntry(groupID, "/opt/c"))
	require.NoError(t, s.ToggleEntry(groupID, 2))

	group := s.ActiveGroup()
	reordered := []Entry{group.Entries[2], group.Entries[0], group.Entries[1]}
	require.NoError(t, s.Reorder(groupID, reordered))

	// Simulated restart.
	restored := Open(path, logger.Nop{})
	entries := restored.ActiveGroup().Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "/opt/c", entries[0].Path)
	assert.False(t, entries[0].Enabled)
	assert.Equal(t, "/opt/a", entries[1].Path)
	assert.True(t, entries[1].Enabled)
	assert.Equal(t, "/opt/b", entries[2].Path)
}

func TestMoveEntry(t *testing.T) {
	s := tempStore(t)
	groupID := s.ActiveGroup().ID
	for _, p := range []string{"/opt/a", "/opt/b", "/opt/c"} {
		require.NoError(t, s.AddEntry(groupID, p))
	}

	require.NoError(t, s.MoveEntry(groupID, 2, -1))
	paths := entryPaths(s.ActiveGroup())
	assert.Equal(t, []string{"/opt/a", "/opt/c", "/opt/b"}, paths)

	// Clamped at the top.
	require.NoError(t, s.MoveEntry(groupID, 0, -1))
	assert.Equal(t, []string{"/opt/a", "/opt/c", "/opt/b"}, entryPaths(s.ActiveGroup()))

	require.NoError(t, s.MoveEntry(groupID, 0, 1))
	assert.Equal(t, []string{"/opt/c", "/opt/a", "/opt/b"}, entryPaths(s.ActiveGroup()))
}

func TestRenameAppAffectsAllGroups(t *testing.T) {
	s := tempStore(t)
	first := s.ActiveGroup()
	second, err := s.CreateGroup("Second")
	require.NoError(t, err)

	require.NoError(t, s.Register("/opt/a"))
	require.NoError(t, s.AddEntry(first.ID, "/opt/a"))
	require.NoError(t, s.AddEntry(second.ID, "/opt/a"))
	require.NoError(t, s.RenameApp("/opt/a", "Tool"))

	doc := s.Snapshot()
	assert.Equal(t, "Tool", doc.DisplayName(doc.Groups[0].Entries[0].Path))
	assert.Equal(t, "Tool", doc.DisplayName(doc.Groups[1].Entries[0].Path))
}

func TestSetActiveGroupPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_data.json")
	s := Open(path, logger.Nop{})
	first := s.ActiveGroup()
	_, err := s.CreateGroup("Second")
	require.NoError(t, err)

	require.NoError(t, s.SetActiveGroup(first.ID))
	assert.ErrorIs(t, s.SetActiveGroup("nope"), ErrGroupNotFound)

	restored := Open(path, logger.Nop{})
	assert.Equal(t, first.ID, restored.Snapshot().ActiveGroupID)
}

func TestAllEnabledPathsDeduplicates(t *testing.T) {
	s := tempStore(t)
	first := s.ActiveGroup()
	second, err := s.CreateGroup("Second")
	require.NoError(t, err)

	require.NoError(t, s.AddEntry(first.ID, "/opt/a"))
	require.NoError(t, s.AddEntry(first.ID, "/opt/b"))
	require.NoError(t, s.AddEntry(second.ID, "/opt/a"))
	require.NoError(t, s.AddEntry(second.ID, "/opt/c"))
	require.NoError(t, s.ToggleEntry(second.ID, 1)) // disable /opt/c

	assert.Equal(t, []string{"/opt/a", "/opt/b"}, s.AllEnabledPaths())
}

func TestLoadSkipsOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_data.json")
	s := Open(path, logger.Nop{})
	require.NoError(t, s.Register("/opt/a"))

	// The file on disk is exactly what we just wrote.
	assert.False(t, s.Load())

	// An external edit must still be picked up.
	content := `{"apps": {}, "groups": [{"id": "g1", "name": "Edited", "entries": []}], "active_group_id": "g1"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assert.True(t, s.Load())
	doc := s.Snapshot()
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, "Edited", doc.Groups[0].Name)
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "apps_data.json")
	s := Open(path, logger.Nop{})
	require.NoError(t, s.Register("/opt/a"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Contains(t, onDisk, "apps")
	assert.Contains(t, onDisk, "groups")
	assert.Contains(t, onDisk, "active_group_id")
}

func entryPaths(g Group) []string {
	paths := make([]string, len(g.Entries))
	for i, e := range g.Entries {
		paths[i] = e.Path
	}
	return paths
}
