package system_test

import (
	"errors"

	"code.cloudfoundry.org/vessel/containerizer/system"
	"code.cloudfoundry.org/vessel/verr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TargetExecer", func() {
	var execer system.TargetExecer

	Context("when the command cannot be found", func() {
		It("fails with an ExecError naming the command", func() {
			err := execer.Exec("definitely-not-a-command", []string{"definitely-not-a-command"}, []string{"PATH=/bin"})

			var execErr verr.ExecError
			Expect(errors.As(err, &execErr)).To(BeTrue())
			Expect(execErr.Command).To(Equal("definitely-not-a-command"))
		})
	})
})
