//go:build !windows && !darwin

package launcher

import "os/exec"

// OSRunner falls back to xdg-open on platforms without a native opener.
type OSRunner struct{}

func (OSRunner) Open(path string) error {
	return exec.Command("xdg-open", path).Start()
}
