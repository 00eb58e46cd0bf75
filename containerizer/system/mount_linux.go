package system

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/vessel/verr"
	"golang.org/x/sys/unix"
)

type MountType string

const (
	Proc  MountType = "proc"
	Tmpfs MountType = "tmpfs"
)

// Mount mounts a fresh instance of a kernel filesystem inside the container.
// A proc mounted here reflects the container's own PID namespace, which is
// why the host's proc is never reused. The mount is scoped to the mount
// namespace and disappears with it; nothing ever unmounts it explicitly.
type Mount struct {
	Type       MountType
	TargetPath string
	Flags      int
	Data       string
}

func (m Mount) Mount() error {
	if err := os.MkdirAll(m.TargetPath, 0755); err != nil {
		return verr.MountError{
			Type:   string(m.Type),
			Target: m.TargetPath,
			Cause:  fmt.Errorf("create mount point directory: %s", err),
		}
	}

	if err := unix.Mount(string(m.Type), m.TargetPath, string(m.Type), uintptr(m.Flags), m.Data); err != nil {
		return verr.MountError{Type: string(m.Type), Target: m.TargetPath, Cause: err}
	}

	return nil
}
