package verr_test

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/vessel/verr"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Verr", func() {
	Describe("ExitCode", func() {
		It("maps each error kind to its reserved code", func() {
			Expect(verr.ExitCode(verr.UsageError{Message: "no command given"})).To(Equal(220))
			Expect(verr.ExitCode(verr.PrivilegeError{Op: "create namespaces"})).To(Equal(221))
			Expect(verr.ExitCode(verr.RootPathError{Path: "/nope"})).To(Equal(222))
			Expect(verr.ExitCode(verr.MountError{Type: "proc", Target: "/proc", Cause: errors.New("eperm")})).To(Equal(223))
			Expect(verr.ExitCode(verr.ExecError{Command: "echo", Cause: errors.New("enoent")})).To(Equal(224))
		})

		It("maps unknown errors to the internal code", func() {
			Expect(verr.ExitCode(errors.New("what even is this"))).To(Equal(225))
		})

		It("sees through wrapping", func() {
			wrapped := fmt.Errorf("outer: %w", verr.RootPathError{Path: "/nope"})
			Expect(verr.ExitCode(wrapped)).To(Equal(222))
		})
	})

	Describe("messages", func() {
		It("names the offending path", func() {
			err := verr.RootPathError{Path: "/var/nope", Cause: errors.New("no such file or directory")}
			Expect(err.Error()).To(ContainSubstring("/var/nope"))
			Expect(err.Error()).To(ContainSubstring("no such file or directory"))
		})

		It("names the offending command", func() {
			err := verr.ExecError{Command: "frobnicate", Cause: errors.New("executable file not found")}
			Expect(err.Error()).To(ContainSubstring("frobnicate"))
		})

		It("names the mount", func() {
			err := verr.MountError{Type: "proc", Target: "/proc", Cause: errors.New("eperm")}
			Expect(err.Error()).To(Equal("vessel: mount proc on /proc: eperm"))
		})
	})

	Describe("unwrapping", func() {
		It("exposes the cause", func() {
			cause := errors.New("underlying")
			Expect(errors.Unwrap(verr.RootPathError{Path: "/p", Cause: cause})).To(Equal(cause))
			Expect(errors.Unwrap(verr.PrivilegeError{Op: "clone", Cause: cause})).To(Equal(cause))
			Expect(errors.Unwrap(verr.MountError{Cause: cause})).To(Equal(cause))
			Expect(errors.Unwrap(verr.ExecError{Cause: cause})).To(Equal(cause))
		})
	})
})
