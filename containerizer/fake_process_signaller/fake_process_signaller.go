// This file was generated by counterfeiter
package fake_process_signaller

import (
	"os"
	"sync"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeProcessSignaller struct {
	SignalStub        func(pid int, signal os.Signal) error
	signalMutex       sync.RWMutex
	signalArgsForCall []struct {
		pid    int
		signal os.Signal
	}
	signalReturns struct {
		result1 error
	}
}

func (fake *FakeProcessSignaller) Signal(pid int, signal os.Signal) error {
	fake.signalMutex.Lock()
	fake.signalArgsForCall = append(fake.signalArgsForCall, struct {
		pid    int
		signal os.Signal
	}{pid, signal})
	fake.signalMutex.Unlock()
	if fake.SignalStub != nil {
		return fake.SignalStub(pid, signal)
	} else {
		return fake.signalReturns.result1
	}
}

func (fake *FakeProcessSignaller) SignalCallCount() int {
	fake.signalMutex.RLock()
	defer fake.signalMutex.RUnlock()
	return len(fake.signalArgsForCall)
}

func (fake *FakeProcessSignaller) SignalArgsForCall(i int) (int, os.Signal) {
	fake.signalMutex.RLock()
	defer fake.signalMutex.RUnlock()
	return fake.signalArgsForCall[i].pid, fake.signalArgsForCall[i].signal
}

func (fake *FakeProcessSignaller) SignalReturns(result1 error) {
	fake.SignalStub = nil
	fake.signalReturns = struct {
		result1 error
	}{result1}
}

var _ containerizer.ProcessSignaller = new(FakeProcessSignaller)
