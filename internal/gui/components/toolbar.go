package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar carries the group-level actions. Entry-level actions live on
// the rows themselves.
type Toolbar struct {
	container *fyne.Container

	AddFileButton     *widget.Button
	RegistryButton    *widget.Button
	NewGroupButton    *widget.Button
	RenameGroupButton *widget.Button
	DeleteGroupButton *widget.Button

	addFileHandler     func()
	registryHandler    func()
	newGroupHandler    func()
	renameGroupHandler func()
	deleteGroupHandler func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.setupToolbar()
	return t
}

func (t *Toolbar) setupToolbar() {
	t.AddFileButton = widget.NewButton("Add File…", t.onAddFile)
	t.AddFileButton.Importance = widget.HighImportance
	t.RegistryButton = widget.NewButton("Add From Registry…", t.onRegistry)

	t.NewGroupButton = widget.NewButton("New Group", t.onNewGroup)
	t.RenameGroupButton = widget.NewButton("Rename Group", t.onRenameGroup)
	t.DeleteGroupButton = widget.NewButton("Delete Group", t.onDeleteGroup)

	leftSection := container.NewHBox(t.AddFileButton, t.RegistryButton)
	rightSection := container.NewHBox(
		t.NewGroupButton,
		t.RenameGroupButton,
		t.DeleteGroupButton,
	)

	t.container = container.NewBorder(
		nil, nil,
		leftSection,
		rightSection,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetAddFileHandler(handler func())     { t.addFileHandler = handler }
func (t *Toolbar) SetRegistryHandler(handler func())    { t.registryHandler = handler }
func (t *Toolbar) SetNewGroupHandler(handler func())    { t.newGroupHandler = handler }
func (t *Toolbar) SetRenameGroupHandler(handler func()) { t.renameGroupHandler = handler }
func (t *Toolbar) SetDeleteGroupHandler(handler func()) { t.deleteGroupHandler = handler }

// SetDeleteEnabled greys out group deletion while only one group exists.
func (t *Toolbar) SetDeleteEnabled(enabled bool) {
	if enabled {
		t.DeleteGroupButton.Enable()
	} else {
		t.DeleteGroupButton.Disable()
	}
}

func (t *Toolbar) onAddFile() {
	if t.addFileHandler != nil {
		t.addFileHandler()
	}
}

func (t *Toolbar) onRegistry() {
	if t.registryHandler != nil {
		t.registryHandler()
	}
}

func (t *Toolbar) onNewGroup() {
	if t.newGroupHandler != nil {
		t.newGroupHandler()
	}
}

func (t *Toolbar) onRenameGroup() {
	if t.renameGroupHandler != nil {
		t.renameGroupHandler()
	}
}

func (t *Toolbar) onDeleteGroup() {
	if t.deleteGroupHandler != nil {
		t.deleteGroupHandler()
	}
}
