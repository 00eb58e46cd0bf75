package system_test

import (
	"os/exec"
	"syscall"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/vessel/containerizer/system"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reaper", func() {
	var reaper *system.Reaper

	BeforeEach(func() {
		reaper = &system.Reaper{Logger: lagertest.NewTestLogger("test")}
	})

	It("passes a normal exit status through verbatim", func() {
		cmd := exec.Command("sh", "-c", "exit 3")
		Expect(cmd.Start()).To(Succeed())

		status, err := reaper.Wait(cmd.Process.Pid)
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(3))
	})

	It("reports a zero status for a clean exit", func() {
		cmd := exec.Command("true")
		Expect(cmd.Start()).To(Succeed())

		status, err := reaper.Wait(cmd.Process.Pid)
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(0))
	})

	It("maps a signal death to 128 plus the signal number", func() {
		cmd := exec.Command("sleep", "60")
		Expect(cmd.Start()).To(Succeed())

		Expect(cmd.Process.Signal(syscall.SIGTERM)).To(Succeed())

		status, err := reaper.Wait(cmd.Process.Pid)
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(128 + int(syscall.SIGTERM)))
	})

	Context("when the pid does not exist", func() {
		It("returns an error", func() {
			_, err := reaper.Wait(-2)
			Expect(err).To(HaveOccurred())
		})
	})
})
