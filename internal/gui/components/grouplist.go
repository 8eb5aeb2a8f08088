package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// GroupRef identifies a copy target in the entry menu.
type GroupRef struct {
	ID   string
	Name string
}

// EntryItem is the view model for one row of a group's list.
type EntryItem struct {
	Path        string
	Name        string
	Enabled     bool
	Exists      bool
	Icon        image.Image
	OtherGroups []GroupRef
	// InGroup marks copy targets that already contain this path.
	InGroup map[string]bool
}

// EntryCallbacks receive the row index the action was invoked on.
type EntryCallbacks struct {
	OnToggle   func(index int)
	OnLaunch   func(index int)
	OnRemove   func(index int)
	OnMoveUp   func(index int)
	OnMoveDown func(index int)
	OnRename   func(index int)
	OnCopyTo   func(index int, groupID string)
}

// GroupList renders one group's entries as a scrollable column of rows.
// It is rebuilt wholesale on every store change, mirroring the render
// model of the rest of the application.
type GroupList struct {
	scroll    *container.Scroll
	rows      *fyne.Container
	guiCanvas fyne.Canvas
}

func NewGroupList(guiCanvas fyne.Canvas) *GroupList {
	rows := container.NewVBox()
	return &GroupList{
		scroll:    container.NewVScroll(rows),
		rows:      rows,
		guiCanvas: guiCanvas,
	}
}

func (gl *GroupList) GetContainer() fyne.CanvasObject {
	return gl.scroll
}

// Populate replaces all rows from the given items.
func (gl *GroupList) Populate(items []EntryItem, callbacks EntryCallbacks) {
	gl.rows.RemoveAll()
	for i, item := range items {
		gl.rows.Add(gl.buildRow(i, item, callbacks))
	}
	if len(items) == 0 {
		empty := widget.NewLabel("No apps in this group yet. Drop files above to add some.")
		empty.Alignment = fyne.TextAlignCenter
		gl.rows.Add(empty)
	}
	gl.rows.Refresh()
}

func (gl *GroupList) buildRow(index int, item EntryItem, callbacks EntryCallbacks) fyne.CanvasObject {
	// The initial state is set before OnChanged is wired; SetChecked
	// would fire the handler and persist a toggle just for rendering.
	check := widget.NewCheck("", nil)
	check.Checked = item.Enabled
	check.OnChanged = func(bool) {
		if callbacks.OnToggle != nil {
			callbacks.OnToggle(index)
		}
	}

	nameLabel := widget.NewLabel(rowText(item))
	nameLabel.TextStyle = fyne.TextStyle{Bold: item.Enabled}

	launchButton := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if callbacks.OnLaunch != nil {
			callbacks.OnLaunch(index)
		}
	})
	upButton := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		if callbacks.OnMoveUp != nil {
			callbacks.OnMoveUp(index)
		}
	})
	downButton := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		if callbacks.OnMoveDown != nil {
			callbacks.OnMoveDown(index)
		}
	})

	menuButton := widget.NewButtonWithIcon("", theme.MoreVerticalIcon(), nil)
	menuButton.OnTapped = func() {
		gl.showRowMenu(menuButton, index, item, callbacks)
	}

	return container.NewBorder(
		nil, nil,
		container.NewHBox(check, gl.rowIcon(item)),
		container.NewHBox(upButton, downButton, launchButton, menuButton),
		nameLabel,
	)
}

func (gl *GroupList) rowIcon(item EntryItem) fyne.CanvasObject {
	if item.Icon != nil {
		img := canvas.NewImageFromImage(item.Icon)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(24, 24))
		return img
	}
	if !item.Exists {
		return widget.NewIcon(theme.ErrorIcon())
	}
	return widget.NewIcon(theme.FileApplicationIcon())
}

func (gl *GroupList) showRowMenu(anchor fyne.CanvasObject, index int, item EntryItem, callbacks EntryCallbacks) {
	menuItems := []*fyne.MenuItem{
		fyne.NewMenuItem("Rename display name", func() {
			if callbacks.OnRename != nil {
				callbacks.OnRename(index)
			}
		}),
	}

	if len(item.OtherGroups) > 0 {
		copyItems := make([]*fyne.MenuItem, 0, len(item.OtherGroups))
		for _, ref := range item.OtherGroups {
			ref := ref
			copyItem := fyne.NewMenuItem(ref.Name, func() {
				if callbacks.OnCopyTo != nil {
					callbacks.OnCopyTo(index, ref.ID)
				}
			})
			copyItem.Disabled = item.InGroup[ref.ID]
			copyItems = append(copyItems, copyItem)
		}
		copyMenu := fyne.NewMenuItem("Add to group", nil)
		copyMenu.ChildMenu = fyne.NewMenu("", copyItems...)
		menuItems = append(menuItems, copyMenu)
	}

	menuItems = append(menuItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Remove from group", func() {
			if callbacks.OnRemove != nil {
				callbacks.OnRemove(index)
			}
		}),
	)

	position := fyne.CurrentApp().Driver().AbsolutePositionForObject(anchor)
	position.Y += anchor.Size().Height
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", menuItems...), gl.guiCanvas, position)
}

func rowText(item EntryItem) string {
	text := item.Name
	if !item.Enabled {
		text = "[disabled]  " + text
	}
	if !item.Exists {
		text += "  (missing)"
	}
	return text
}
