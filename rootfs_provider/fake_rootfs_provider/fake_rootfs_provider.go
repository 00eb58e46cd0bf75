// This file was generated by counterfeiter
package fake_rootfs_provider

import (
	"sync"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/vessel/rootfs_provider"
)

type FakeRootFSProvider struct {
	ProvideRootFSStub        func(logger lager.Logger, path string) (string, error)
	provideRootFSMutex       sync.RWMutex
	provideRootFSArgsForCall []struct {
		logger lager.Logger
		path   string
	}
	provideRootFSReturns struct {
		result1 string
		result2 error
	}
}

func (fake *FakeRootFSProvider) ProvideRootFS(logger lager.Logger, path string) (string, error) {
	fake.provideRootFSMutex.Lock()
	fake.provideRootFSArgsForCall = append(fake.provideRootFSArgsForCall, struct {
		logger lager.Logger
		path   string
	}{logger, path})
	fake.provideRootFSMutex.Unlock()
	if fake.ProvideRootFSStub != nil {
		return fake.ProvideRootFSStub(logger, path)
	} else {
		return fake.provideRootFSReturns.result1, fake.provideRootFSReturns.result2
	}
}

func (fake *FakeRootFSProvider) ProvideRootFSCallCount() int {
	fake.provideRootFSMutex.RLock()
	defer fake.provideRootFSMutex.RUnlock()
	return len(fake.provideRootFSArgsForCall)
}

func (fake *FakeRootFSProvider) ProvideRootFSArgsForCall(i int) (lager.Logger, string) {
	fake.provideRootFSMutex.RLock()
	defer fake.provideRootFSMutex.RUnlock()
	return fake.provideRootFSArgsForCall[i].logger, fake.provideRootFSArgsForCall[i].path
}

func (fake *FakeRootFSProvider) ProvideRootFSReturns(result1 string, result2 error) {
	fake.ProvideRootFSStub = nil
	fake.provideRootFSReturns = struct {
		result1 string
		result2 error
	}{result1, result2}
}

var _ rootfs_provider.RootFSProvider = new(FakeRootFSProvider)
