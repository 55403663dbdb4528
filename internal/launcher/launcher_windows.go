//go:build windows

package launcher

import (
	"fmt"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// launch runs the batch script via the system shell in a freshly created
// console window and detaches from it.
func launch(scriptPath string) error {
	cmd := exec.Command("cmd", "/c", scriptPath)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start console: %w", err)
	}

	return cmd.Process.Release()
}
