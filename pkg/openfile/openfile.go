// Package openfile launches the platform file viewer for a saved artifact.
package openfile

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the desktop environment to display the file. It is fire and
// forget: the viewer is started detached and never waited on.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("no file opener for %s", runtime.GOOS)
	}
	return cmd.Start()
}
