package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"launchdeck/internal/gui/components"
	"launchdeck/internal/logger"
)

// GroupView is the render model for one tab.
type GroupView struct {
	ID      string
	Name    string
	Entries []components.EntryItem
}

// ViewModel is everything the GUI needs to redraw itself. The store is
// the single source of truth; every change re-renders from a fresh one.
type ViewModel struct {
	Groups        []GroupView
	ActiveGroupID string
}

// Manager owns the widget tree and routes user actions to handlers set
// by the application layer. It performs no store access of its own.
type Manager struct {
	window     fyne.Window
	log        logger.Logger
	isShutdown bool

	dropZone  *components.DropZone
	toolbar   *components.Toolbar
	statusBar *components.StatusBar
	tabs      *container.AppTabs
	tabGroups []string

	launchGroupButton *widget.Button
	launchAllButton   *widget.Button

	rendering bool
	current   ViewModel

	filesAddedHandler      func(paths []string)
	registryRequestHandler func()
	groupSelectedHandler   func(groupID string)
	groupCreateHandler     func(name string)
	groupRenameHandler     func(groupID, name string)
	groupDeleteHandler     func(groupID string)
	entryToggleHandler     func(groupID string, index int)
	entryLaunchHandler     func(groupID string, index int)
	entryRemoveHandler     func(groupID string, index int)
	entryMoveHandler       func(groupID string, index, delta int)
	entryRenameHandler     func(path, name string)
	entryCopyHandler       func(path, targetGroupID string)
	launchGroupHandler     func()
	launchAllHandler       func()
}

func NewManager(window fyne.Window, dropHint string, log logger.Logger) *Manager {
	m := &Manager{
		window:    window,
		log:       log,
		dropZone:  components.NewDropZone(dropHint),
		toolbar:   components.NewToolbar(),
		statusBar: components.NewStatusBar(),
		tabs:      container.NewAppTabs(),
	}

	m.launchGroupButton = widget.NewButton("Launch Group  [F5]", func() {
		if m.launchGroupHandler != nil {
			m.launchGroupHandler()
		}
	})
	m.launchGroupButton.Importance = widget.HighImportance
	m.launchAllButton = widget.NewButton("Launch All", func() {
		if m.launchAllHandler != nil {
			m.launchAllHandler()
		}
	})

	m.tabs.OnSelected = func(item *container.TabItem) {
		m.onTabSelected()
	}

	m.toolbar.SetAddFileHandler(m.openAddFileDialog)
	m.toolbar.SetRegistryHandler(func() {
		if m.registryRequestHandler != nil {
			m.registryRequestHandler()
		}
	})
	m.toolbar.SetNewGroupHandler(m.promptNewGroup)
	m.toolbar.SetRenameGroupHandler(m.promptRenameGroup)
	m.toolbar.SetDeleteGroupHandler(m.confirmDeleteGroup)

	m.setupWindow()

	log.Info("GUIManager", "initialized", nil)
	return m
}

func (m *Manager) setupWindow() {
	m.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if m.filesAddedHandler == nil {
			return
		}
		paths := make([]string, 0, len(uris))
		for _, uri := range uris {
			paths = append(paths, uri.Path())
		}
		if len(paths) > 0 {
			m.filesAddedHandler(paths)
		}
	})

	m.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyF5 && m.launchGroupHandler != nil {
			m.launchGroupHandler()
		}
	})
}

func (m *Manager) GetMainContainer() *fyne.Container {
	top := container.NewVBox(
		m.dropZone.GetContainer(),
		m.toolbar.GetContainer(),
	)
	bottom := container.NewVBox(
		container.NewGridWithColumns(2, m.launchGroupButton, m.launchAllButton),
		m.statusBar.GetContainer(),
	)
	return container.NewBorder(top, bottom, nil, nil, m.tabs)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Render rebuilds the tab set from the view model. Safe to call from
// any goroutine.
func (m *Manager) Render(vm ViewModel) {
	fyne.Do(func() {
		m.rendering = true
		defer func() { m.rendering = false }()

		m.current = vm
		m.tabGroups = m.tabGroups[:0]

		items := make([]*container.TabItem, 0, len(vm.Groups))
		activeIndex := 0
		for i, group := range vm.Groups {
			list := components.NewGroupList(m.window.Canvas())
			list.Populate(group.Entries, m.entryCallbacks(group.ID))
			items = append(items, container.NewTabItem(group.Name, list.GetContainer()))
			m.tabGroups = append(m.tabGroups, group.ID)
			if group.ID == vm.ActiveGroupID {
				activeIndex = i
			}
		}

		m.tabs.SetItems(items)
		if len(items) > 0 {
			m.tabs.SelectIndex(activeIndex)
		}

		m.toolbar.SetDeleteEnabled(len(vm.Groups) > 1)
		m.refreshCounts()
	})
}

func (m *Manager) entryCallbacks(groupID string) components.EntryCallbacks {
	return components.EntryCallbacks{
		OnToggle: func(index int) {
			if m.entryToggleHandler != nil {
				m.entryToggleHandler(groupID, index)
			}
		},
		OnLaunch: func(index int) {
			if m.entryLaunchHandler != nil {
				m.entryLaunchHandler(groupID, index)
			}
		},
		OnRemove: func(index int) {
			if m.entryRemoveHandler != nil {
				m.entryRemoveHandler(groupID, index)
			}
		},
		OnMoveUp: func(index int) {
			if m.entryMoveHandler != nil {
				m.entryMoveHandler(groupID, index, -1)
			}
		},
		OnMoveDown: func(index int) {
			if m.entryMoveHandler != nil {
				m.entryMoveHandler(groupID, index, 1)
			}
		},
		OnRename: func(index int) {
			m.promptRenameEntry(groupID, index)
		},
		OnCopyTo: func(index int, targetID string) {
			if entry, ok := m.entryAt(groupID, index); ok && m.entryCopyHandler != nil {
				m.entryCopyHandler(entry.Path, targetID)
			}
		},
	}
}

func (m *Manager) entryAt(groupID string, index int) (components.EntryItem, bool) {
	for _, group := range m.current.Groups {
		if group.ID != groupID {
			continue
		}
		if index < 0 || index >= len(group.Entries) {
			return components.EntryItem{}, false
		}
		return group.Entries[index], true
	}
	return components.EntryItem{}, false
}

func (m *Manager) activeGroup() (GroupView, bool) {
	index := m.tabs.SelectedIndex()
	if index < 0 || index >= len(m.tabGroups) {
		return GroupView{}, false
	}
	id := m.tabGroups[index]
	for _, group := range m.current.Groups {
		if group.ID == id {
			return group, true
		}
	}
	return GroupView{}, false
}

func (m *Manager) onTabSelected() {
	if m.rendering {
		return
	}
	group, ok := m.activeGroup()
	if !ok {
		return
	}
	m.current.ActiveGroupID = group.ID
	m.refreshCounts()
	if m.groupSelectedHandler != nil {
		m.groupSelectedHandler(group.ID)
	}
}

func (m *Manager) refreshCounts() {
	group, ok := m.activeGroup()
	if !ok {
		m.statusBar.SetCounts("", 0, 0)
		m.launchGroupButton.Disable()
		return
	}
	enabled := 0
	for _, entry := range group.Entries {
		if entry.Enabled {
			enabled++
		}
	}
	m.statusBar.SetCounts(group.Name, len(group.Entries), enabled)
	if enabled > 0 {
		m.launchGroupButton.Enable()
	} else {
		m.launchGroupButton.Disable()
	}
}

// SetStatus updates the transient status line. Safe from any goroutine.
func (m *Manager) SetStatus(status string) {
	fyne.Do(func() {
		m.statusBar.SetStatus(status)
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.log.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

// ShowLaunchResult reports a batch launch; failures open a dialog so
// individual OS messages stay readable.
func (m *Manager) ShowLaunchResult(launched int, failures []string) {
	fyne.Do(func() {
		if len(failures) == 0 {
			m.statusBar.SetStatus(fmt.Sprintf("Launched %d apps", launched))
			return
		}
		message := fmt.Sprintf("Launched %d, %d failed:\n", launched, len(failures))
		for _, failure := range failures {
			message += "\n" + failure
		}
		dialog.ShowInformation("Launch Result", message, m.window)
	})
}

// ShowRegistryPicker opens the add-from-registry dialog.
func (m *Manager) ShowRegistryPicker(choices []components.RegistryChoice, onPick func(path string)) {
	fyne.Do(func() {
		components.ShowRegistryPicker(choices, m.window, onPick)
	})
}

func (m *Manager) openAddFileDialog() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if m.filesAddedHandler != nil {
			m.filesAddedHandler([]string{path})
		}
	}, m.window)
	fileOpen.Show()
}

func (m *Manager) promptNewGroup() {
	m.promptText("New Group", "Group name", "", func(name string) {
		if m.groupCreateHandler != nil {
			m.groupCreateHandler(name)
		}
	})
}

func (m *Manager) promptRenameGroup() {
	group, ok := m.activeGroup()
	if !ok {
		return
	}
	m.promptText("Rename Group", "Group name", group.Name, func(name string) {
		if m.groupRenameHandler != nil {
			m.groupRenameHandler(group.ID, name)
		}
	})
}

func (m *Manager) confirmDeleteGroup() {
	group, ok := m.activeGroup()
	if !ok {
		return
	}
	message := fmt.Sprintf("Delete group %q?\nRegistered apps stay in the global registry.", group.Name)
	dialog.ShowConfirm("Delete Group", message, func(confirmed bool) {
		if confirmed && m.groupDeleteHandler != nil {
			m.groupDeleteHandler(group.ID)
		}
	}, m.window)
}

func (m *Manager) promptRenameEntry(groupID string, index int) {
	entry, ok := m.entryAt(groupID, index)
	if !ok {
		return
	}
	m.promptText("Rename App", "Display name", entry.Name, func(name string) {
		if m.entryRenameHandler != nil {
			m.entryRenameHandler(entry.Path, name)
		}
	})
}

func (m *Manager) promptText(title, label, initial string, onSubmit func(value string)) {
	entry := widget.NewEntry()
	entry.SetText(initial)
	items := []*widget.FormItem{widget.NewFormItem(label, entry)}
	dialog.ShowForm(title, "OK", "Cancel", items, func(confirmed bool) {
		if confirmed {
			onSubmit(entry.Text)
		}
	}, m.window)
}

func (m *Manager) SetFilesAddedHandler(handler func(paths []string)) {
	m.filesAddedHandler = handler
}

func (m *Manager) SetRegistryRequestHandler(handler func()) {
	m.registryRequestHandler = handler
}

func (m *Manager) SetGroupSelectedHandler(handler func(groupID string)) {
	m.groupSelectedHandler = handler
}

func (m *Manager) SetGroupCreateHandler(handler func(name string)) {
	m.groupCreateHandler = handler
}

func (m *Manager) SetGroupRenameHandler(handler func(groupID, name string)) {
	m.groupRenameHandler = handler
}

func (m *Manager) SetGroupDeleteHandler(handler func(groupID string)) {
	m.groupDeleteHandler = handler
}

func (m *Manager) SetEntryToggleHandler(handler func(groupID string, index int)) {
	m.entryToggleHandler = handler
}

func (m *Manager) SetEntryLaunchHandler(handler func(groupID string, index int)) {
	m.entryLaunchHandler = handler
}

func (m *Manager) SetEntryRemoveHandler(handler func(groupID string, index int)) {
	m.entryRemoveHandler = handler
}

func (m *Manager) SetEntryMoveHandler(handler func(groupID string, index, delta int)) {
	m.entryMoveHandler = handler
}

func (m *Manager) SetEntryRenameHandler(handler func(path, name string)) {
	m.entryRenameHandler = handler
}

func (m *Manager) SetEntryCopyHandler(handler func(path, targetGroupID string)) {
	m.entryCopyHandler = handler
}

func (m *Manager) SetLaunchGroupHandler(handler func()) {
	m.launchGroupHandler = handler
}

func (m *Manager) SetLaunchAllHandler(handler func()) {
	m.launchAllHandler = handler
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.log.Info("GUIManager", "shutdown initiated", nil)
}
