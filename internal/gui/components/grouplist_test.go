package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

// Rendering must never mutate state: building rows for a group may not
// invoke any entry callback, whatever the enabled flags are.
func TestPopulateFiresNoCallbacks(t *testing.T) {
	test.NewApp()
	list := NewGroupList(test.NewCanvas())

	var fired []string
	record := func(action string) func(int) {
		return func(index int) {
			fired = append(fired, action)
		}
	}
	callbacks := EntryCallbacks{
		OnToggle:   record("toggle"),
		OnLaunch:   record("launch"),
		OnRemove:   record("remove"),
		OnMoveUp:   record("up"),
		OnMoveDown: record("down"),
		OnRename:   record("rename"),
		OnCopyTo:   func(int, string) { fired = append(fired, "copy") },
	}

	items := []EntryItem{
		{Path: "/opt/a", Name: "a", Enabled: true, Exists: true},
		{Path: "/opt/b", Name: "b", Enabled: false, Exists: true},
		{Path: "/opt/c", Name: "c", Enabled: true, Exists: false},
	}
	list.Populate(items, callbacks)
	list.Populate(items, callbacks)

	assert.Empty(t, fired)
}

func TestPopulateReflectsEnabledState(t *testing.T) {
	test.NewApp()
	list := NewGroupList(test.NewCanvas())

	items := []EntryItem{
		{Path: "/opt/a", Name: "a", Enabled: true, Exists: true},
		{Path: "/opt/b", Name: "b", Enabled: false, Exists: true},
	}
	list.Populate(items, EntryCallbacks{})

	assert.Equal(t, "a", rowText(items[0]))
	assert.Equal(t, "[disabled]  b", rowText(items[1]))
}
