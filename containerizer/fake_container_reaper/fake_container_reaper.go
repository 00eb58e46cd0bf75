// This file was generated by counterfeiter
package fake_container_reaper

import (
	"sync"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeContainerReaper struct {
	WaitStub        func(pid int) (int, error)
	waitMutex       sync.RWMutex
	waitArgsForCall []struct {
		pid int
	}
	waitReturns struct {
		result1 int
		result2 error
	}
}

func (fake *FakeContainerReaper) Wait(pid int) (int, error) {
	fake.waitMutex.Lock()
	fake.waitArgsForCall = append(fake.waitArgsForCall, struct {
		pid int
	}{pid})
	fake.waitMutex.Unlock()
	if fake.WaitStub != nil {
		return fake.WaitStub(pid)
	} else {
		return fake.waitReturns.result1, fake.waitReturns.result2
	}
}

func (fake *FakeContainerReaper) WaitCallCount() int {
	fake.waitMutex.RLock()
	defer fake.waitMutex.RUnlock()
	return len(fake.waitArgsForCall)
}

func (fake *FakeContainerReaper) WaitArgsForCall(i int) int {
	fake.waitMutex.RLock()
	defer fake.waitMutex.RUnlock()
	return fake.waitArgsForCall[i].pid
}

func (fake *FakeContainerReaper) WaitReturns(result1 int, result2 error) {
	fake.WaitStub = nil
	fake.waitReturns = struct {
		result1 int
		result2 error
	}{result1, result2}
}

var _ containerizer.ContainerReaper = new(FakeContainerReaper)
