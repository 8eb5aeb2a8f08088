//go:build darwin

package launcher

import "os/exec"

// OSRunner opens paths through the system open command.
type OSRunner struct{}

func (OSRunner) Open(path string) error {
	return exec.Command("open", path).Start()
}
