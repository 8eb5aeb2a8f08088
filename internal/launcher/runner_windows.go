//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// OSRunner opens paths with the shell's start command so .lnk, .bat and
// document associations resolve the same way a double-click would.
type OSRunner struct{}

func (OSRunner) Open(path string) error {
	cmd := exec.Command("cmd", "/C", "start", "", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd.Start()
}
