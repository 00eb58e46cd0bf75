package rootfs_provider

import (
	"errors"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/vessel/verr"
)

//go:generate counterfeiter -o fake_rootfs_provider/fake_rootfs_provider.go . RootFSProvider
type RootFSProvider interface {
	ProvideRootFS(logger lager.Logger, path string) (string, error)
}

// DirProvider is the boundary to whatever materialized the root filesystem
// tree: it accepts a path an external tool has already populated and hands
// back the resolved directory. Image acquisition itself lives outside this
// repository.
type DirProvider struct{}

func NewDirProvider() *DirProvider {
	return &DirProvider{}
}

func (p *DirProvider) ProvideRootFS(logger lager.Logger, path string) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", verr.RootPathError{Path: path, Cause: err}
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		return "", verr.RootPathError{Path: resolved, Cause: err}
	}
	if !fi.IsDir() {
		return "", verr.RootPathError{Path: resolved, Cause: errors.New("not a directory")}
	}

	logger.Debug("rootfs-resolved", lager.Data{"path": resolved})
	return resolved, nil
}
