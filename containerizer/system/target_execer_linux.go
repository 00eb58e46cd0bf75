package system

import (
	"os/exec"

	"code.cloudfoundry.org/vessel/verr"
	"golang.org/x/sys/unix"
)

// TargetExecer replaces the current process image with the target command.
// On success Exec never returns; nothing may run after it, so it is always
// the container's final setup step.
type TargetExecer struct{}

func (TargetExecer) Exec(command string, argv []string, env []string) error {
	path, err := exec.LookPath(command)
	if err != nil {
		return verr.ExecError{Command: command, Cause: err}
	}

	if err := unix.Exec(path, argv, env); err != nil {
		return verr.ExecError{Command: command, Cause: err}
	}

	// unreachable: Exec either replaced the process or returned an error
	return nil
}
