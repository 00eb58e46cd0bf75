package system

import (
	"errors"
	"path/filepath"

	"github.com/prometheus/procfs"
)

var (
	errNotADirectory = errors.New("not a directory")
	errMountedProc   = errors.New("proc is already mounted inside the root filesystem")
)

//go:generate counterfeiter -o fake_mount_point_checker/fake_mount_point_checker.go . MountPointChecker
type MountPointChecker interface {
	IsMountPoint(path string) (bool, error)
}

// ProcMountChecker answers mount-point questions from the calling process's
// own mount table. It only works while /proc is still visible, so callers
// consult it before re-rooting.
type ProcMountChecker struct{}

func (ProcMountChecker) IsMountPoint(path string) (bool, error) {
	path = filepath.Clean(path)

	mounts, err := procfs.GetMounts()
	if err != nil {
		return false, err
	}

	for _, mount := range mounts {
		if filepath.Clean(mount.MountPoint) == path {
			return true, nil
		}
	}

	return false, nil
}
