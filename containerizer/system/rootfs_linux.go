package system

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/vessel/verr"
	"golang.org/x/sys/unix"
)

// RootFS re-roots the process's filesystem view to a pre-existing directory
// tree. The simple chroot-style re-root is deliberate: this launcher targets
// the privileged, single-command case and does not detach the old root.
type RootFS struct {
	Root        string
	MountPoints MountPointChecker
}

// Enter validates the root path, refuses a root whose proc directory is
// already a live mount point, then re-roots and leaves the working directory
// at the new root's top level. It must run before any mount lands inside the
// container, and never after.
func (r *RootFS) Enter() error {
	if err := checkDirectory(r.Root); err != nil {
		return err
	}

	if r.MountPoints != nil {
		mounted, err := r.MountPoints.IsMountPoint(filepath.Join(r.Root, "proc"))
		if err != nil {
			return verr.RootPathError{Path: r.Root, Cause: err}
		}
		if mounted {
			return verr.RootPathError{Path: r.Root, Cause: errMountedProc}
		}
	}

	if err := unix.Chroot(r.Root); err != nil {
		return verr.RootPathError{Path: r.Root, Cause: err}
	}

	if err := unix.Chdir("/"); err != nil {
		return verr.RootPathError{Path: r.Root, Cause: err}
	}

	return nil
}

func checkDirectory(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return verr.RootPathError{Path: dir, Cause: err}
	}

	if !fi.IsDir() {
		return verr.RootPathError{Path: dir, Cause: errNotADirectory}
	}

	return nil
}
