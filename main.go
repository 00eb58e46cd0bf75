package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.cloudfoundry.org/vessel/containerizer"
	"code.cloudfoundry.org/vessel/containerizer/system"
	"code.cloudfoundry.org/vessel/hook"
	"code.cloudfoundry.org/vessel/logging"
	"code.cloudfoundry.org/vessel/process"
	"code.cloudfoundry.org/vessel/rootfs_provider"
	"code.cloudfoundry.org/vessel/verr"
	"github.com/cloudfoundry/gunk/command_runner/linux_command_runner"
	"github.com/docker/docker/pkg/reexec"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/sigmon"
	"golang.org/x/sys/unix"
)

const defaultHostname = "vessel"

func init() {
	reexec.Register("vessel-init", initContainer)
}

// vessel runs a single command inside a fresh UTS+PID+mount namespace set,
// re-rooted to a pre-existing root filesystem. The parent phase below
// spawns, supervises and reaps the container; the vessel-init phase
// (initContainer) runs as PID 1 inside it.
func main() {
	if reexec.Init() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "vessel: panicked: %s\n", r)
			os.Exit(verr.ExitInternal)
		}
	}()

	rootfsPath := flag.String("rootfs", "", "path to the root file system directory")
	hostname := flag.String("hostname", defaultHostname, "hostname inside the container")
	lagerflags.AddFlags(flag.CommandLine)
	flag.Parse()

	logger, _ := lagerflags.New("vessel")

	command := flag.Args()
	if len(command) == 0 {
		fail(logger, verr.UsageError{Message: "no command given"})
	}
	if *rootfsPath == "" {
		fail(logger, verr.UsageError{Message: "-rootfs is required"})
	}

	// Namespace creation and re-rooting need root; refuse up front rather
	// than leaving a partially isolated process behind.
	if os.Geteuid() != 0 {
		fail(logger, verr.PrivilegeError{Op: "create namespaces (run as root)"})
	}

	rootfs, err := rootfs_provider.NewDirProvider().ProvideRootFS(logger, *rootfsPath)
	if err != nil {
		fail(logger, err)
	}

	syncReader, syncWriter, err := os.Pipe()
	if err != nil {
		fail(logger, fmt.Errorf("vessel: create synchronizer pipe: %s", err))
	}

	// The parent's copy of the write end closes once the container is
	// running, so a child that dies before reporting yields EOF instead of
	// a timeout.
	hook.Register(hook.ParentAfterSpawn, func() {
		syncWriter.Close()
	})

	initArgs := []string{"vessel-init", "-rootfs", rootfs, "-hostname", *hostname, "--"}
	initArgs = append(initArgs, command...)

	runner := &logging.Runner{
		CommandRunner: linux_command_runner.New(),
		Logger:        logger,
	}

	cz := &containerizer.Containerizer{
		InitBinPath: reexec.Self(),
		InitArgs:    initArgs,
		Execer: &system.NamespacingExecer{
			CommandRunner: runner,
			ExtraFiles:    []*os.File{syncWriter},
			Stdin:         os.Stdin,
			Stdout:        os.Stdout,
			Stderr:        os.Stderr,
		},
		Reaper:    &system.Reaper{Logger: logger},
		Signaller: system.Signaller{},
		Waiter: &containerizer.PipeSynchronizer{
			Reader: syncReader,
		},
		Hooks:  hook.DefaultHookSet,
		Logger: logger,
	}

	var status int
	launch := ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		close(ready)

		var err error
		status, err = cz.Create(signals)
		return err
	})

	launcher := ifrit.Invoke(sigmon.New(launch))
	if err := <-launcher.Wait(); err != nil {
		fail(logger, err)
	}

	os.Exit(status)
}

// initContainer is the first logic inside the new namespace set. Isolation
// state mutates in a fixed order: hostname, re-root, container mounts, then
// the target exec replaces this process.
func initContainer() {
	runtime.LockOSThread()

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "vessel-init: panicked: %s\n", r)
			os.Exit(verr.ExitInternal)
		}
	}()

	flagSet := flag.NewFlagSet("vessel-init", flag.ExitOnError)
	rootfsPath := flagSet.String("rootfs", "", "path to the root file system directory")
	hostname := flagSet.String("hostname", defaultHostname, "hostname inside the container")
	lagerflags.AddFlags(flagSet)
	flagSet.Parse(os.Args[1:])

	logger, _ := lagerflags.New("vessel-init")

	command := flagSet.Args()
	if len(command) == 0 {
		fail(logger, verr.UsageError{Message: "no command given"})
	}

	env, err := process.NewEnv(os.Environ())
	if err != nil {
		fail(logger, err)
	}

	sync := &containerizer.PipeSynchronizer{
		Writer: os.NewFile(uintptr(3), "/dev/sync"),
	}

	cz := &containerizer.Containerizer{
		Hostname:    *hostname,
		HostnameSet: system.Hostname{},
		RootFS: &system.RootFS{
			Root:        *rootfsPath,
			MountPoints: system.ProcMountChecker{},
		},
		Initializer: &system.Initializer{
			Steps: []system.StepRunner{
				&containerizer.FuncStep{Func: system.Mount{
					Type:       system.Proc,
					TargetPath: "/proc",
					Flags:      unix.MS_NOSUID | unix.MS_NODEV | unix.MS_NOEXEC,
				}.Mount},
			},
		},
		TargetExecer: system.TargetExecer{},
		Env:          env,
		Sync:         sync,
		Hooks:        hook.DefaultHookSet,
		Logger:       logger,
	}

	// Child only returns on failure; on success the target command has
	// replaced this process.
	fail(logger, cz.Child(command[0], command))
}

func fail(logger lager.Logger, err error) {
	logger.Error("vessel", err)
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(verr.ExitCode(err))
}
