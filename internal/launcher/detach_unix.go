//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// detach starts cmd in a new session so it survives the menu's terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
