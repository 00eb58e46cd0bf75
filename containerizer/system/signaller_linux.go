package system

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Signaller relays a signal caught by the launcher to the container's init
// process. Without this relay an interrupted launcher would leave the
// container running detached, holding its namespaces and mounts.
type Signaller struct{}

func (Signaller) Signal(pid int, signal os.Signal) error {
	sig, ok := signal.(syscall.Signal)
	if !ok {
		return fmt.Errorf("system: cannot forward non-posix signal %v", signal)
	}

	if err := unix.Kill(pid, sig); err != nil {
		return fmt.Errorf("system: forward signal %v to process %d: %s", signal, pid, err)
	}

	return nil
}
