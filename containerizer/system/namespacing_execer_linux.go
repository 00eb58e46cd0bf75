package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"code.cloudfoundry.org/vessel/verr"
	"github.com/cloudfoundry/gunk/command_runner"
)

// NamespacingExecer spawns the container's init process with a fresh UTS,
// PID and mount namespace attached atomically at clone time. The namespace
// set lives exactly as long as the process tree it confines; the kernel
// reclaims it when the last process exits.
type NamespacingExecer struct {
	CommandRunner command_runner.CommandRunner
	ExtraFiles    []*os.File
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
}

// Exec starts binPath with args as the full argv. args[0] carries the
// re-exec marker, so it is not derived from binPath.
func (e *NamespacingExecer) Exec(binPath string, args ...string) (int, error) {
	cmd := exec.Command(binPath)
	cmd.Args = args

	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags: uintptr(syscall.CLONE_NEWUTS | syscall.CLONE_NEWNS | syscall.CLONE_NEWPID),
	}

	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.ExtraFiles = e.ExtraFiles

	if err := e.CommandRunner.Start(cmd); err != nil {
		if errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES) {
			return 0, verr.PrivilegeError{Op: "create namespaces", Cause: err}
		}
		return 0, fmt.Errorf("system: failed to start the init process: %s", err)
	}

	return cmd.Process.Pid, nil
}
