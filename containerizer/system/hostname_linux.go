package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Hostname sets the container's hostname. The UTS namespace is private to
// the container's process tree, so the host never observes the change.
type Hostname struct{}

func (Hostname) SetHostname(name string) error {
	if err := unix.Sethostname([]byte(name)); err != nil {
		return fmt.Errorf("system: set hostname to %q: %s", name, err)
	}
	return nil
}
