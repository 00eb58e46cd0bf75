package system

import (
	"fmt"
	"syscall"

	"code.cloudfoundry.org/lager/v3"
)

// Reaper waits for the container's init process and translates its wait
// status into the launcher's exit status: normal exits pass through
// verbatim, a signal death becomes 128 plus the signal number.
type Reaper struct {
	Logger lager.Logger
}

func (r *Reaper) Wait(pid int) (int, error) {
	var status syscall.WaitStatus

	for {
		wpid, err := syscall.Wait4(pid, &status, 0, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("system: wait for container process %d: %s", pid, err)
		}
		if wpid == pid && (status.Exited() || status.Signaled()) {
			break
		}
	}

	if status.Signaled() {
		r.Logger.Info("container-signaled", lager.Data{"pid": pid, "signal": int(status.Signal())})
		return 128 + int(status.Signal()), nil
	}

	r.Logger.Info("container-exited", lager.Data{"pid": pid, "status": status.ExitStatus()})
	return status.ExitStatus(), nil
}
