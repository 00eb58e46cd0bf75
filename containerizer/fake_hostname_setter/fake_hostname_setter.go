// This file was generated by counterfeiter
package fake_hostname_setter

import (
	"sync"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeHostnameSetter struct {
	SetHostnameStub        func(name string) error
	setHostnameMutex       sync.RWMutex
	setHostnameArgsForCall []struct {
		name string
	}
	setHostnameReturns struct {
		result1 error
	}
}

func (fake *FakeHostnameSetter) SetHostname(name string) error {
	fake.setHostnameMutex.Lock()
	fake.setHostnameArgsForCall = append(fake.setHostnameArgsForCall, struct {
		name string
	}{name})
	fake.setHostnameMutex.Unlock()
	if fake.SetHostnameStub != nil {
		return fake.SetHostnameStub(name)
	} else {
		return fake.setHostnameReturns.result1
	}
}

func (fake *FakeHostnameSetter) SetHostnameCallCount() int {
	fake.setHostnameMutex.RLock()
	defer fake.setHostnameMutex.RUnlock()
	return len(fake.setHostnameArgsForCall)
}

func (fake *FakeHostnameSetter) SetHostnameArgsForCall(i int) string {
	fake.setHostnameMutex.RLock()
	defer fake.setHostnameMutex.RUnlock()
	return fake.setHostnameArgsForCall[i].name
}

func (fake *FakeHostnameSetter) SetHostnameReturns(result1 error) {
	fake.SetHostnameStub = nil
	fake.setHostnameReturns = struct {
		result1 error
	}{result1}
}

var _ containerizer.HostnameSetter = new(FakeHostnameSetter)
