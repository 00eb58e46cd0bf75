package verr

import (
	"errors"
	"fmt"
)

// Exit codes reserved for launcher failures. The target command's own exit
// codes pass through verbatim, so these sit above the range well-behaved
// programs use. A container killed by a signal makes the launcher exit with
// 128 plus the signal number.
const (
	ExitUsage     = 220
	ExitPrivilege = 221
	ExitRootPath  = 222
	ExitMount     = 223
	ExitExec      = 224
	ExitInternal  = 225
)

// UsageError means the invocation itself was malformed, e.g. no command was
// given. It is detected before any process is spawned.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string {
	return fmt.Sprintf("vessel: usage: %s", e.Message)
}

// PrivilegeError means namespace creation was refused, commonly because the
// launcher is not running as root. Nothing has been spawned or mounted when
// it is returned.
type PrivilegeError struct {
	Op    string
	Cause error
}

func (e PrivilegeError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("vessel: insufficient privilege: %s", e.Op)
	}
	return fmt.Sprintf("vessel: insufficient privilege: %s: %s", e.Op, e.Cause)
}

func (e PrivilegeError) Unwrap() error { return e.Cause }

// RootPathError names a root filesystem path that is missing or not a
// directory.
type RootPathError struct {
	Path  string
	Cause error
}

func (e RootPathError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("vessel: invalid root filesystem %s", e.Path)
	}
	return fmt.Sprintf("vessel: invalid root filesystem %s: %s", e.Path, e.Cause)
}

func (e RootPathError) Unwrap() error { return e.Cause }

// MountError means a filesystem could not be mounted inside the container's
// mount namespace.
type MountError struct {
	Type   string
	Target string
	Cause  error
}

func (e MountError) Error() string {
	return fmt.Sprintf("vessel: mount %s on %s: %s", e.Type, e.Target, e.Cause)
}

func (e MountError) Unwrap() error { return e.Cause }

// ExecError names a target command that could not be started inside the
// container.
type ExecError struct {
	Command string
	Cause   error
}

func (e ExecError) Error() string {
	return fmt.Sprintf("vessel: exec %s: %s", e.Command, e.Cause)
}

func (e ExecError) Unwrap() error { return e.Cause }

// ExitCode maps an error to the reserved exit code for its kind. Errors
// outside the taxonomy map to ExitInternal.
func ExitCode(err error) int {
	var (
		usage     UsageError
		privilege PrivilegeError
		rootPath  RootPathError
		mount     MountError
		exec      ExecError
	)

	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &privilege):
		return ExitPrivilege
	case errors.As(err, &rootPath):
		return ExitRootPath
	case errors.As(err, &mount):
		return ExitMount
	case errors.As(err, &exec):
		return ExitExec
	}

	return ExitInternal
}
