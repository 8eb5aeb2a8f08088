package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"launchdeck/internal/gui"
	"launchdeck/internal/gui/components"
	"launchdeck/internal/icons"
	"launchdeck/internal/launcher"
	"launchdeck/internal/logger"
	"launchdeck/internal/store"
)

// supportedExtensions mirrors what a double-click can start on Windows.
var supportedExtensions = map[string]bool{
	".exe": true,
	".lnk": true,
	".bat": true,
	".cmd": true,
	".ps1": true,
}

// Handlers glue user actions to the store and dispatcher. Every
// mutation goes through the store (which persists immediately) and ends
// in a full re-render.
type Handlers struct {
	registry   *store.Store
	dispatcher *launcher.Dispatcher
	guiManager *gui.Manager
	log        logger.Logger
}

func NewHandlers(registry *store.Store, dispatcher *launcher.Dispatcher, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		registry:   registry,
		dispatcher: dispatcher,
		guiManager: gm,
		log:        log,
	}
}

func (h *Handlers) Wire() {
	h.guiManager.SetFilesAddedHandler(h.HandleFilesAdded)
	h.guiManager.SetRegistryRequestHandler(h.HandleRegistryRequest)
	h.guiManager.SetGroupSelectedHandler(h.HandleGroupSelected)
	h.guiManager.SetGroupCreateHandler(h.HandleGroupCreate)
	h.guiManager.SetGroupRenameHandler(h.HandleGroupRename)
	h.guiManager.SetGroupDeleteHandler(h.HandleGroupDelete)
	h.guiManager.SetEntryToggleHandler(h.HandleEntryToggle)
	h.guiManager.SetEntryLaunchHandler(h.HandleEntryLaunch)
	h.guiManager.SetEntryRemoveHandler(h.HandleEntryRemove)
	h.guiManager.SetEntryMoveHandler(h.HandleEntryMove)
	h.guiManager.SetEntryRenameHandler(h.HandleEntryRename)
	h.guiManager.SetEntryCopyHandler(h.HandleEntryCopy)
	h.guiManager.SetLaunchGroupHandler(h.HandleLaunchGroup)
	h.guiManager.SetLaunchAllHandler(h.HandleLaunchAll)
}

// Render pushes a fresh view model built from the store.
func (h *Handlers) Render() {
	h.guiManager.Render(h.buildViewModel())
}

func (h *Handlers) buildViewModel() gui.ViewModel {
	doc := h.registry.Snapshot()

	refs := make([]components.GroupRef, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		refs = append(refs, components.GroupRef{ID: g.ID, Name: g.Name})
	}

	vm := gui.ViewModel{ActiveGroupID: doc.ActiveGroupID}
	for _, g := range doc.Groups {
		view := gui.GroupView{ID: g.ID, Name: g.Name}
		for _, entry := range g.Entries {
			_, statErr := os.Stat(entry.Path)
			item := components.EntryItem{
				Path:    entry.Path,
				Name:    doc.DisplayName(entry.Path),
				Enabled: entry.Enabled,
				Exists:  statErr == nil,
				InGroup: map[string]bool{},
			}
			if item.Exists {
				item.Icon = icons.Load(entry.Path)
			}
			for _, ref := range refs {
				if ref.ID == g.ID {
					continue
				}
				item.OtherGroups = append(item.OtherGroups, ref)
				if other := doc.Groups[indexOfGroup(doc.Groups, ref.ID)]; other != nil {
					for _, e := range other.Entries {
						if e.Path == entry.Path {
							item.InGroup[ref.ID] = true
							break
						}
					}
				}
			}
			view.Entries = append(view.Entries, item)
		}
		vm.Groups = append(vm.Groups, view)
	}
	return vm
}

func indexOfGroup(groups []*store.Group, id string) int {
	for i, g := range groups {
		if g.ID == id {
			return i
		}
	}
	return 0
}

// HandleFilesAdded registers dropped or picked paths and appends them
// to the active group. Unsupported file types are skipped quietly.
func (h *Handlers) HandleFilesAdded(paths []string) {
	group := h.registry.ActiveGroup()
	inGroup := map[string]bool{}
	for _, entry := range group.Entries {
		inGroup[entry.Path] = true
	}

	added := 0
	for _, path := range paths {
		if !isSupported(path) {
			continue
		}
		known := h.isRegistered(path)
		if err := h.registry.Register(path); err != nil {
			h.guiManager.ShowError("Register", err)
			continue
		}
		if !known {
			// A Windows shortcut may carry a friendlier name than the stem.
			if _, name := icons.ResolveShortcut(path); name != "" {
				if err := h.registry.RenameApp(path, name); err != nil {
					h.log.Error("Handlers", err, map[string]interface{}{"path": path})
				}
			}
		}
		if inGroup[path] {
			continue
		}
		if err := h.registry.AddEntry(group.ID, path); err != nil {
			h.guiManager.ShowError("Add Entry", err)
			continue
		}
		inGroup[path] = true
		added++
	}

	h.Render()
	if added > 0 {
		h.guiManager.SetStatus(fmt.Sprintf("Added %d apps to the current group", added))
	} else {
		h.guiManager.SetStatus("Nothing added; files already in this group or unsupported")
	}
}

func (h *Handlers) isRegistered(path string) bool {
	doc := h.registry.Snapshot()
	_, ok := doc.Apps[path]
	return ok
}

// HandleRegistryRequest opens the picker with registered apps missing
// from the active group.
func (h *Handlers) HandleRegistryRequest() {
	doc := h.registry.Snapshot()
	group := h.registry.ActiveGroup()

	inGroup := map[string]bool{}
	for _, entry := range group.Entries {
		inGroup[entry.Path] = true
	}

	var choices []components.RegistryChoice
	for path := range doc.Apps {
		if inGroup[path] {
			continue
		}
		choices = append(choices, components.RegistryChoice{
			Path: path,
			Name: doc.DisplayName(path),
		})
	}
	sort.Slice(choices, func(i, j int) bool {
		return strings.ToLower(choices[i].Name) < strings.ToLower(choices[j].Name)
	})

	h.guiManager.ShowRegistryPicker(choices, func(path string) {
		if err := h.registry.AddEntry(group.ID, path); err != nil {
			h.guiManager.ShowError("Add Entry", err)
			return
		}
		h.Render()
		h.guiManager.SetStatus(fmt.Sprintf("Added %q to %s", h.registry.DisplayName(path), group.Name))
	})
}

func (h *Handlers) HandleGroupSelected(groupID string) {
	if err := h.registry.SetActiveGroup(groupID); err != nil {
		h.log.Error("Handlers", err, map[string]interface{}{"group": groupID})
	}
}

func (h *Handlers) HandleGroupCreate(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, err := h.registry.CreateGroup(name); err != nil {
		h.guiManager.ShowError("New Group", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleGroupRename(groupID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if err := h.registry.RenameGroup(groupID, name); err != nil {
		h.guiManager.ShowError("Rename Group", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleGroupDelete(groupID string) {
	if err := h.registry.DeleteGroup(groupID); err != nil {
		h.guiManager.ShowError("Delete Group", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleEntryToggle(groupID string, index int) {
	if err := h.registry.ToggleEntry(groupID, index); err != nil {
		h.guiManager.ShowError("Toggle", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleEntryLaunch(groupID string, index int) {
	group := h.groupByID(groupID)
	if index < 0 || index >= len(group.Entries) {
		return
	}
	path := group.Entries[index].Path
	name := h.registry.DisplayName(path)
	if err := h.dispatcher.LaunchOne(path); err != nil {
		h.guiManager.ShowError("Launch Failed", fmt.Errorf("%s: %w", name, err))
		return
	}
	h.guiManager.SetStatus(fmt.Sprintf("Launched %q", name))
}

func (h *Handlers) HandleEntryRemove(groupID string, index int) {
	if err := h.registry.RemoveEntry(groupID, index); err != nil {
		h.guiManager.ShowError("Remove", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleEntryMove(groupID string, index, delta int) {
	if err := h.registry.MoveEntry(groupID, index, delta); err != nil {
		h.guiManager.ShowError("Reorder", err)
		return
	}
	h.Render()
}

func (h *Handlers) HandleEntryRename(path, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if err := h.registry.RenameApp(path, name); err != nil {
		h.guiManager.ShowError("Rename App", err)
		return
	}
	// Renames affect every group referencing the path.
	h.Render()
}

func (h *Handlers) HandleEntryCopy(path, targetGroupID string) {
	if err := h.registry.AddEntry(targetGroupID, path); err != nil {
		h.guiManager.ShowError("Add To Group", err)
		return
	}
	h.Render()
	h.guiManager.SetStatus(fmt.Sprintf("Added %q to %s", h.registry.DisplayName(path), h.groupByID(targetGroupID).Name))
}

func (h *Handlers) HandleLaunchGroup() {
	group := h.registry.ActiveGroup()
	paths := h.registry.EnabledPaths(group.ID)
	if len(paths) == 0 {
		h.guiManager.SetStatus("No enabled apps in the current group")
		return
	}
	h.report(h.dispatcher.LaunchMany(paths))
}

func (h *Handlers) HandleLaunchAll() {
	paths := h.registry.AllEnabledPaths()
	if len(paths) == 0 {
		h.guiManager.SetStatus("No enabled apps in any group")
		return
	}
	h.report(h.dispatcher.LaunchMany(paths))
}

func (h *Handlers) report(result launcher.Result) {
	failures := make([]string, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, fmt.Sprintf("%s: %v", failure.Name, failure.Err))
	}
	h.guiManager.ShowLaunchResult(result.Launched, failures)
}

func (h *Handlers) groupByID(id string) store.Group {
	doc := h.registry.Snapshot()
	for _, g := range doc.Groups {
		if g.ID == id {
			return *g
		}
	}
	return store.Group{}
}

func isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if supportedExtensions[ext] {
		return true
	}
	// Unix executables usually carry no extension at all.
	return ext == "" && runtime.GOOS != "windows"
}
