// This file was generated by counterfeiter
package fake_sync_waiter

import (
	"sync"
	"time"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeSyncWaiter struct {
	WaitStub        func(timeout time.Duration) error
	waitMutex       sync.RWMutex
	waitArgsForCall []struct {
		timeout time.Duration
	}
	waitReturns struct {
		result1 error
	}
}

func (fake *FakeSyncWaiter) Wait(timeout time.Duration) error {
	fake.waitMutex.Lock()
	fake.waitArgsForCall = append(fake.waitArgsForCall, struct {
		timeout time.Duration
	}{timeout})
	fake.waitMutex.Unlock()
	if fake.WaitStub != nil {
		return fake.WaitStub(timeout)
	} else {
		return fake.waitReturns.result1
	}
}

func (fake *FakeSyncWaiter) WaitCallCount() int {
	fake.waitMutex.RLock()
	defer fake.waitMutex.RUnlock()
	return len(fake.waitArgsForCall)
}

func (fake *FakeSyncWaiter) WaitArgsForCall(i int) time.Duration {
	fake.waitMutex.RLock()
	defer fake.waitMutex.RUnlock()
	return fake.waitArgsForCall[i].timeout
}

func (fake *FakeSyncWaiter) WaitReturns(result1 error) {
	fake.WaitStub = nil
	fake.waitReturns = struct {
		result1 error
	}{result1}
}

var _ containerizer.SyncWaiter = new(FakeSyncWaiter)
