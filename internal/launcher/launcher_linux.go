//go:build linux

package launcher

import (
	"fmt"
	"os/exec"
)

// launch starts the first available terminal emulator with the script and
// detaches from it.
func launch(scriptPath string) error {
	name, args, err := pickTerminal(exec.LookPath, scriptPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	// Detach: the terminal keeps running after this process exits.
	return cmd.Process.Release()
}
