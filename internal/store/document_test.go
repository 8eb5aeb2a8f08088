package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\tools\x.exe`, "x"},
		{`C:\tools\My App.lnk`, "My App"},
		{"/usr/bin/htop", "htop"},
		{"/opt/scripts/backup.sh", "backup"},
		{"plain", "plain"},
		{".hidden", ".hidden"},
		{`C:\dir.with.dots\tool.v2.exe`, "tool.v2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PathStem(tt.path), "path %q", tt.path)
	}
}

func TestDisplayNamePrefersRegistry(t *testing.T) {
	doc := Document{
		Apps: map[string]App{
			"/opt/a": {Path: "/opt/a", Name: "Editor"},
			"/opt/b": {Path: "/opt/b"},
		},
	}
	assert.Equal(t, "Editor", doc.DisplayName("/opt/a"))
	assert.Equal(t, "b", doc.DisplayName("/opt/b"))
	assert.Equal(t, "c", doc.DisplayName("/opt/c"))
}

func TestDecodeDocumentDropsNullGroups(t *testing.T) {
	raw := []byte(`{"groups": [null, {"id": "g1", "name": "Work"}, null], "active_group_id": "g1"}`)
	doc, err := decodeDocument(raw)
	assert.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, "Work", doc.Groups[0].Name)
	assert.Equal(t, "g1", doc.ActiveGroupID)
}

func TestDecodeDocumentFillsMissingIDs(t *testing.T) {
	raw := []byte(`{"groups": [{"name": "Work"}], "active_group_id": "stale"}`)
	doc, err := decodeDocument(raw)
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.Groups[0].ID)
	assert.NotNil(t, doc.Groups[0].Entries)
	// Stale pointer resolves to the first group.
	assert.Equal(t, doc.Groups[0].ID, doc.ActiveGroupID)
}
