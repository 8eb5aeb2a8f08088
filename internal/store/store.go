package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"launchdeck/internal/logger"
)

var (
	errNoGroups = errors.New("document has no groups")

	// ErrLastGroup is returned when deleting the only remaining group.
	ErrLastGroup = errors.New("cannot delete the last remaining group")

	// ErrGroupNotFound is returned for operations on an unknown group id.
	ErrGroupNotFound = errors.New("group not found")

	// ErrBadIndex is returned for entry operations outside the group's range.
	ErrBadIndex = errors.New("entry index out of range")
)

// Store owns the in-memory document mirrored to a JSON file. Every
// mutating operation persists immediately; there is no batching. The
// mutex exists because the fsnotify reload callback and headless CLI
// paths touch the store off the UI thread.
type Store struct {
	mu   sync.Mutex
	path string
	doc  Document
	log  logger.Logger

	// lastSaved holds the bytes of our most recent write so the file
	// watcher's reload can tell our own saves from external edits.
	lastSaved []byte
}

// Open loads the document at path, substituting a fresh single-group
// document when the file is missing, corrupt or missing required keys.
// Open never fails on document problems, only reports them in logs.
func Open(path string, log logger.Logger) *Store {
	s := &Store{path: path, log: log}
	s.Load()
	return s
}

// Load re-reads the document from disk, applying the same recovery as
// Open. Used at startup and when the data file changes externally. It
// reports whether the in-memory document was replaced; a file whose
// content matches our own last write is skipped.
func (s *Store) Load() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warning("Store", "data file unreadable, starting fresh", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		s.doc = newDocument()
		return true
	}

	if s.lastSaved != nil && bytes.Equal(raw, s.lastSaved) {
		return false
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		s.log.Warning("Store", "data file corrupt, starting fresh", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		s.doc = newDocument()
		return true
	}

	s.doc = doc
	s.log.Debug("Store", "document loaded", map[string]interface{}{
		"apps":   len(doc.Apps),
		"groups": len(doc.Groups),
	})
	return true
}

// Save writes the document to disk, creating parent directories as
// needed. The write is a direct overwrite.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	raw, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	s.lastSaved = raw
	return nil
}

// Path returns the on-disk location of the document.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a deep copy of the current document for rendering.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Document{
		Apps:          make(map[string]App, len(s.doc.Apps)),
		Groups:        make([]*Group, len(s.doc.Groups)),
		ActiveGroupID: s.doc.ActiveGroupID,
	}
	for k, v := range s.doc.Apps {
		doc.Apps[k] = v
	}
	for i, g := range s.doc.Groups {
		entries := make([]Entry, len(g.Entries))
		copy(entries, g.Entries)
		doc.Groups[i] = &Group{ID: g.ID, Name: g.Name, Entries: entries}
	}
	return doc
}

// Register inserts an App keyed by path with a derived default name.
// Registering an already-known path is a no-op; the first name wins.
func (s *Store) Register(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Apps[path]; ok {
		return nil
	}
	s.doc.Apps[path] = App{Path: path, Name: PathStem(path)}
	return s.save()
}

// AddEntry appends an enabled entry for path to the group. Adding a
// path already present in that group is a silent no-op; the same path
// may live in any number of other groups.
func (s *Store) AddEntry(groupID, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if g.containsPath(path) {
		return nil
	}
	g.Entries = append(g.Entries, Entry{Path: path, Enabled: true})
	return s.save()
}

// RemoveEntry deletes the entry at index. The App stays registered.
func (s *Store) RemoveEntry(groupID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if index < 0 || index >= len(g.Entries) {
		return ErrBadIndex
	}
	g.Entries = append(g.Entries[:index], g.Entries[index+1:]...)
	return s.save()
}

// ToggleEntry flips the enabled flag of the entry at index.
func (s *Store) ToggleEntry(groupID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if index < 0 || index >= len(g.Entries) {
		return ErrBadIndex
	}
	g.Entries[index].Enabled = !g.Entries[index].Enabled
	return s.save()
}

// Reorder replaces the group's entry sequence wholesale. The view layer
// hands back the list in its new on-screen order after a drag.
func (s *Store) Reorder(groupID string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	g.Entries = append([]Entry{}, entries...)
	return s.save()
}

// MoveEntry shifts the entry at index by delta positions within its
// group, clamping at the ends.
func (s *Store) MoveEntry(groupID string, index, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if index < 0 || index >= len(g.Entries) {
		return ErrBadIndex
	}
	target := index + delta
	if target < 0 {
		target = 0
	}
	if target >= len(g.Entries) {
		target = len(g.Entries) - 1
	}
	if target == index {
		return nil
	}
	entry := g.Entries[index]
	g.Entries = append(g.Entries[:index], g.Entries[index+1:]...)
	g.Entries = append(g.Entries[:target], append([]Entry{entry}, g.Entries[target:]...)...)
	return s.save()
}

// RenameApp updates the display name rendered in every group that
// references the path. An unregistered path is registered on the spot.
func (s *Store) RenameApp(path, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.doc.Apps[path]
	if !ok {
		app = App{Path: path}
	}
	app.Name = name
	s.doc.Apps[path] = app
	return s.save()
}

// CreateGroup appends a new named group and makes it active.
func (s *Store) CreateGroup(name string) (*Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := NewGroup(name)
	s.doc.Groups = append(s.doc.Groups, g)
	s.doc.ActiveGroupID = g.ID
	if err := s.save(); err != nil {
		return nil, err
	}
	return g, nil
}

// RenameGroup sets a group's display name.
func (s *Store) RenameGroup(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(id)
	if g == nil {
		return ErrGroupNotFound
	}
	g.Name = name
	return s.save()
}

// DeleteGroup removes a group, refusing to delete the last one. The
// active pointer moves to the first remaining group. Registered apps
// referenced by the deleted group stay in the registry.
func (s *Store) DeleteGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Groups) <= 1 {
		return ErrLastGroup
	}
	idx := -1
	for i, g := range s.doc.Groups {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrGroupNotFound
	}
	s.doc.Groups = append(s.doc.Groups[:idx], s.doc.Groups[idx+1:]...)
	s.doc.normalizeActive()
	return s.save()
}

// SetActiveGroup records the last-selected group, restored on restart.
func (s *Store) SetActiveGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.group(id) == nil {
		return ErrGroupNotFound
	}
	s.doc.ActiveGroupID = id
	return s.save()
}

// ActiveGroup returns a copy of the active group.
func (s *Store) ActiveGroup() Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(s.doc.ActiveGroupID)
	if g == nil {
		g = s.doc.Groups[0]
	}
	entries := make([]Entry, len(g.Entries))
	copy(entries, g.Entries)
	return Group{ID: g.ID, Name: g.Name, Entries: entries}
}

// GroupByName finds a group by display name. Used by the headless CLI.
func (s *Store) GroupByName(name string) (Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.doc.Groups {
		if g.Name == name {
			entries := make([]Entry, len(g.Entries))
			copy(entries, g.Entries)
			return Group{ID: g.ID, Name: g.Name, Entries: entries}, true
		}
	}
	return Group{}, false
}

// EnabledPaths returns the enabled entry paths of one group, in order.
func (s *Store) EnabledPaths(groupID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.doc.group(groupID)
	if g == nil {
		return nil
	}
	paths := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		if e.Enabled {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// AllEnabledPaths returns the enabled paths of every group, globally
// deduplicated in first-seen order.
func (s *Store) AllEnabledPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	var paths []string
	for _, g := range s.doc.Groups {
		for _, e := range g.Entries {
			if e.Enabled && !seen[e.Path] {
				paths = append(paths, e.Path)
				seen[e.Path] = true
			}
		}
	}
	return paths
}

// DisplayName resolves the rendered name for a path.
func (s *Store) DisplayName(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.DisplayName(path)
}
