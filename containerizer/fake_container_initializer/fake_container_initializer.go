// This file was generated by counterfeiter
package fake_container_initializer

import (
	"sync"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeContainerInitializer struct {
	InitStub        func() error
	initMutex       sync.RWMutex
	initArgsForCall []struct{}
	initReturns     struct {
		result1 error
	}
}

func (fake *FakeContainerInitializer) Init() error {
	fake.initMutex.Lock()
	fake.initArgsForCall = append(fake.initArgsForCall, struct{}{})
	fake.initMutex.Unlock()
	if fake.InitStub != nil {
		return fake.InitStub()
	} else {
		return fake.initReturns.result1
	}
}

func (fake *FakeContainerInitializer) InitCallCount() int {
	fake.initMutex.RLock()
	defer fake.initMutex.RUnlock()
	return len(fake.initArgsForCall)
}

func (fake *FakeContainerInitializer) InitReturns(result1 error) {
	fake.InitStub = nil
	fake.initReturns = struct {
		result1 error
	}{result1}
}

var _ containerizer.ContainerInitializer = new(FakeContainerInitializer)
