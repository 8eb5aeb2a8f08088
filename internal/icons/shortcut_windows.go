//go:build windows

package icons

import (
	"path/filepath"
	"strings"

	lnk "github.com/parsiya/golnk"
)

// ResolveShortcut follows a .lnk shortcut to its target path and display
// name. Non-shortcut paths and unparseable shortcuts come back unchanged
// with an empty name.
func ResolveShortcut(path string) (target string, name string) {
	if !strings.EqualFold(filepath.Ext(path), ".lnk") {
		return path, ""
	}
	link, err := lnk.File(path)
	if err != nil {
		return path, ""
	}

	if link.LinkInfo.LocalBasePath != "" {
		target = link.LinkInfo.LocalBasePath
	} else if link.LinkInfo.LocalBasePathUnicode != "" {
		target = link.LinkInfo.LocalBasePathUnicode
	} else {
		target = path
	}
	name = link.StringData.NameString
	return target, name
}
