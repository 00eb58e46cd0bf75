package logging_test

import (
	"os/exec"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/vessel/logging"
	"github.com/cloudfoundry/gunk/command_runner"
	"github.com/cloudfoundry/gunk/command_runner/linux_command_runner"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		innerRunner command_runner.CommandRunner
		logger      *lagertest.TestLogger

		runner *logging.Runner
	)

	BeforeEach(func() {
		innerRunner = linux_command_runner.New()
		logger = lagertest.NewTestLogger("test")
	})

	JustBeforeEach(func() {
		runner = &logging.Runner{
			CommandRunner: innerRunner,
			Logger:        logger,
		}
	})

	It("logs the duration it took to run the command", func() {
		err := runner.Run(exec.Command("sleep", "1"))
		Ω(err).ShouldNot(HaveOccurred())

		Ω(logger.TestSink.Logs()).ShouldNot(BeEmpty())

		log := logger.TestSink.Logs()[len(logger.TestSink.Logs())-1]

		took := log.Data["took"].(string)
		Ω(took).ShouldNot(BeEmpty())

		duration, err := time.ParseDuration(took)
		Ω(err).ShouldNot(HaveOccurred())
		Ω(duration).Should(BeNumerically(">=", 1*time.Second))
	})

	It("logs the argv of the command", func() {
		err := runner.Run(exec.Command("true", "banana"))
		Ω(err).ShouldNot(HaveOccurred())

		log := logger.TestSink.Logs()[len(logger.TestSink.Logs())-1]

		argv, ok := log.Data["argv"].([]interface{})
		Ω(ok).Should(BeTrue())
		Ω(argv).Should(ConsistOf("true", "banana"))
	})

	It("returns the command's error", func() {
		err := runner.Run(exec.Command("false"))
		Ω(err).Should(HaveOccurred())
	})

	Describe("delegation", func() {
		It("starts, signals and waits through the inner runner", func() {
			cmd := exec.Command("sleep", "60")

			Ω(runner.Start(cmd)).Should(Succeed())
			Ω(runner.Signal(cmd, syscall.SIGTERM)).Should(Succeed())

			err := runner.Wait(cmd)
			Ω(err).Should(HaveOccurred())
		})

		It("kills through the inner runner", func() {
			cmd := exec.Command("sleep", "60")

			Ω(runner.Start(cmd)).Should(Succeed())
			Ω(runner.Kill(cmd)).Should(Succeed())

			runner.Wait(cmd)
		})
	})
})

var _ = Describe("Runner sessions", func() {
	It("scopes each action in its own session", func() {
		logger := lagertest.NewTestLogger("test")
		runner := &logging.Runner{
			CommandRunner: linux_command_runner.New(),
			Logger:        logger,
		}

		Ω(runner.Run(exec.Command("true"))).Should(Succeed())

		logs := logger.TestSink.Logs()
		Ω(logs).ShouldNot(BeEmpty())
		Ω(logs[len(logs)-1].LogLevel).Should(Equal(lager.INFO))
	})
})
