package containerizer

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/vessel/hook"
	"code.cloudfoundry.org/vessel/process"
)

const setupReportTimeout = 2 * time.Minute

//go:generate counterfeiter -o fake_container_execer/fake_container_execer.go . ContainerExecer
type ContainerExecer interface {
	Exec(binPath string, args ...string) (int, error)
}

//go:generate counterfeiter -o fake_container_reaper/fake_container_reaper.go . ContainerReaper
type ContainerReaper interface {
	Wait(pid int) (int, error)
}

//go:generate counterfeiter -o fake_process_signaller/fake_process_signaller.go . ProcessSignaller
type ProcessSignaller interface {
	Signal(pid int, signal os.Signal) error
}

//go:generate counterfeiter -o fake_hostname_setter/fake_hostname_setter.go . HostnameSetter
type HostnameSetter interface {
	SetHostname(name string) error
}

//go:generate counterfeiter -o fake_rootfs_enterer/fake_rootfs_enterer.go . RootFSEnterer
type RootFSEnterer interface {
	Enter() error
}

//go:generate counterfeiter -o fake_container_initializer/fake_container_initializer.go . ContainerInitializer
type ContainerInitializer interface {
	Init() error
}

//go:generate counterfeiter -o fake_target_execer/fake_target_execer.go . TargetExecer
type TargetExecer interface {
	Exec(command string, argv []string, env []string) error
}

//go:generate counterfeiter -o fake_sync_waiter/fake_sync_waiter.go . SyncWaiter
type SyncWaiter interface {
	Wait(timeout time.Duration) error
}

//go:generate counterfeiter -o fake_sync_signaller/fake_sync_signaller.go . SyncSignaller
type SyncSignaller interface {
	SignalSuccess() error
	SignalError(err error) error
}

// Containerizer drives both phases of the launch. The parent phase (Create)
// spawns the namespaced init process, forwards signals to it and waits for
// it exactly once. The child phase (Child) runs as PID 1 of the new
// namespace set and mutates isolation state in a fixed order: hostname,
// root filesystem, container mounts, then the target exec.
type Containerizer struct {
	// parent phase
	InitBinPath string
	InitArgs    []string
	Execer      ContainerExecer
	Reaper      ContainerReaper
	Signaller   ProcessSignaller
	Waiter      SyncWaiter

	// child phase
	Hostname     string
	HostnameSet  HostnameSetter
	RootFS       RootFSEnterer
	Initializer  ContainerInitializer
	TargetExecer TargetExecer
	Env          process.Env
	Sync         SyncSignaller

	Hooks  hook.HookSet
	Logger lager.Logger
}

// Create spawns the container's init process and blocks until it
// terminates. Signals arriving on signals are forwarded to the container
// for its whole lifetime. The returned status is the container's exit
// status, ready to be propagated verbatim.
func (c *Containerizer) Create(signals <-chan os.Signal) (int, error) {
	log := c.Logger.Session("create")

	c.Hooks.Fire(hook.ParentBeforeSpawn)

	pid, err := c.Execer.Exec(c.InitBinPath, c.InitArgs...)
	if err != nil {
		return 0, err
	}

	log.Info("container-spawned", lager.Data{"pid": pid})
	c.Hooks.Fire(hook.ParentAfterSpawn)

	if c.Waiter != nil {
		go func() {
			if err := c.Waiter.Wait(setupReportTimeout); err != nil {
				log.Error("container-setup", err)
			}
		}()
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case signal := <-signals:
				if err := c.Signaller.Signal(pid, signal); err != nil {
					log.Error("forward-signal", err)
				}
			case <-done:
				return
			}
		}
	}()

	return c.Reaper.Wait(pid)
}

// Child runs the in-container setup sequence and becomes the target
// command. It only returns on failure; the error has already been reported
// to the parent through the synchronizer by then.
func (c *Containerizer) Child(command string, argv []string) error {
	if err := c.HostnameSet.SetHostname(c.Hostname); err != nil {
		return c.signalError(fmt.Errorf("containerizer: set hostname: %s", err))
	}

	if err := c.RootFS.Enter(); err != nil {
		return c.signalError(err)
	}

	c.Hooks.Fire(hook.ChildAfterReroot)

	if err := c.Initializer.Init(); err != nil {
		return c.signalError(err)
	}

	c.Hooks.Fire(hook.ChildBeforeExec)

	if err := c.Sync.SignalSuccess(); err != nil {
		c.Logger.Error("signal-success", err)
	}

	env := c.Env
	if env == nil {
		var err error
		env, err = process.NewEnv(os.Environ())
		if err != nil {
			return err
		}
	}

	return c.TargetExecer.Exec(command, argv, env.Array())
}

func (c *Containerizer) signalError(err error) error {
	if signalErr := c.Sync.SignalError(err); signalErr != nil {
		c.Logger.Error("signal-error", signalErr)
	}
	return err
}
