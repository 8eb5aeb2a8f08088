// Package icons resolves best-effort visuals and shortcut metadata for
// registered paths. Every lookup degrades to nothing rather than error
// the caller; rendering falls back to the theme's file icon.
package icons

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyne-io/image/ico"
)

// Load returns an icon image for path. It decodes path itself when it
// is an .ico file, otherwise an .ico sitting beside the target with the
// same stem. A nil image means no icon could be resolved.
func Load(path string) image.Image {
	candidates := []string{}
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		candidates = append(candidates, path)
	} else {
		stem := strings.TrimSuffix(path, filepath.Ext(path))
		candidates = append(candidates, stem+".ico")
	}

	for _, candidate := range candidates {
		f, err := os.Open(candidate)
		if err != nil {
			continue
		}
		img, err := ico.Decode(f)
		f.Close()
		if err == nil {
			return img
		}
	}
	return nil
}
