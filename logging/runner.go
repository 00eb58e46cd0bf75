package logging

import (
	"os"
	"os/exec"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/gunk/command_runner"
)

// Runner decorates a command runner so every spawned command is logged with
// its argv and how long it took.
type Runner struct {
	CommandRunner command_runner.CommandRunner
	Logger        lager.Logger
}

func (r *Runner) Run(cmd *exec.Cmd) error {
	log := r.log("run", cmd)

	started := time.Now()
	err := r.CommandRunner.Run(cmd)

	log.Info("finished", lager.Data{"took": time.Since(started).String()})

	return err
}

func (r *Runner) Start(cmd *exec.Cmd) error {
	r.log("start", cmd)
	return r.CommandRunner.Start(cmd)
}

func (r *Runner) Background(cmd *exec.Cmd) error {
	r.log("background", cmd)
	return r.CommandRunner.Background(cmd)
}

func (r *Runner) Wait(cmd *exec.Cmd) error {
	r.log("wait", cmd)
	return r.CommandRunner.Wait(cmd)
}

func (r *Runner) Kill(cmd *exec.Cmd) error {
	r.log("kill", cmd)
	return r.CommandRunner.Kill(cmd)
}

func (r *Runner) Signal(cmd *exec.Cmd, signal os.Signal) error {
	r.log("signal", cmd)
	return r.CommandRunner.Signal(cmd, signal)
}

func (r *Runner) log(action string, cmd *exec.Cmd) lager.Logger {
	log := r.Logger.Session(action, lager.Data{"argv": cmd.Args})
	log.Debug("starting")
	return log
}
