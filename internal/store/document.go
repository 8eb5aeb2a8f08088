package store

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

const DefaultGroupName = "Default"

// App is a registry entry: a registered executable path with a display
// name. Apps are shared across groups and never deleted implicitly.
type App struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Entry is a group-local reference to a registered App.
type Entry struct {
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// UnmarshalJSON applies the enabled-by-default rule for entries written
// by earlier revisions that omitted the flag.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var wire struct {
		Path    string `json:"path"`
		Enabled *bool  `json:"enabled"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.Path = wire.Path
	e.Enabled = wire.Enabled == nil || *wire.Enabled
	return nil
}

// Group is a named, ordered collection of entries.
type Group struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

func NewGroup(name string) *Group {
	return &Group{
		ID:      uuid.New().String(),
		Name:    name,
		Entries: []Entry{},
	}
}

func (g *Group) containsPath(path string) bool {
	for _, e := range g.Entries {
		if e.Path == path {
			return true
		}
	}
	return false
}

// Document is the persistence unit: the global app registry, the ordered
// group list and the last-selected group.
type Document struct {
	Apps          map[string]App `json:"apps"`
	Groups        []*Group       `json:"groups"`
	ActiveGroupID string         `json:"active_group_id"`
}

func newDocument() Document {
	g := NewGroup(DefaultGroupName)
	return Document{
		Apps:          map[string]App{},
		Groups:        []*Group{g},
		ActiveGroupID: g.ID,
	}
}

// decodeDocument parses raw JSON, coercing a malformed apps field to an
// empty registry instead of discarding the groups beside it. A document
// without a usable groups list is rejected wholesale.
func decodeDocument(raw []byte) (Document, error) {
	var wire struct {
		Apps          json.RawMessage `json:"apps"`
		Groups        []*Group        `json:"groups"`
		ActiveGroupID string          `json:"active_group_id"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Document{}, err
	}

	// A literal null in the groups array decodes to a nil pointer.
	// Drop those instead of letting them poison the rest.
	groups := make([]*Group, 0, len(wire.Groups))
	for _, g := range wire.Groups {
		if g != nil {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return Document{}, errNoGroups
	}

	doc := Document{
		Apps:          map[string]App{},
		Groups:        groups,
		ActiveGroupID: wire.ActiveGroupID,
	}
	if len(wire.Apps) > 0 {
		if err := json.Unmarshal(wire.Apps, &doc.Apps); err != nil {
			doc.Apps = map[string]App{}
		}
	}
	for _, g := range doc.Groups {
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		if g.Entries == nil {
			g.Entries = []Entry{}
		}
	}
	doc.normalizeActive()
	return doc, nil
}

func (d *Document) normalizeActive() {
	for _, g := range d.Groups {
		if g.ID == d.ActiveGroupID {
			return
		}
	}
	d.ActiveGroupID = d.Groups[0].ID
}

func (d *Document) group(id string) *Group {
	for _, g := range d.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// DisplayName resolves the rendered name for a path: the registered
// name when present, the filename stem otherwise.
func (d *Document) DisplayName(path string) string {
	if app, ok := d.Apps[path]; ok && app.Name != "" {
		return app.Name
	}
	return PathStem(path)
}

// PathStem derives a default display name from a file path. Both path
// separators are handled so documents written on Windows stay readable
// elsewhere.
func PathStem(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
