// This file was generated by counterfeiter
package fake_mount_point_checker

import (
	"sync"

	"code.cloudfoundry.org/vessel/containerizer/system"
)

type FakeMountPointChecker struct {
	IsMountPointStub        func(path string) (bool, error)
	isMountPointMutex       sync.RWMutex
	isMountPointArgsForCall []struct {
		path string
	}
	isMountPointReturns struct {
		result1 bool
		result2 error
	}
}

func (fake *FakeMountPointChecker) IsMountPoint(path string) (bool, error) {
	fake.isMountPointMutex.Lock()
	fake.isMountPointArgsForCall = append(fake.isMountPointArgsForCall, struct {
		path string
	}{path})
	fake.isMountPointMutex.Unlock()
	if fake.IsMountPointStub != nil {
		return fake.IsMountPointStub(path)
	} else {
		return fake.isMountPointReturns.result1, fake.isMountPointReturns.result2
	}
}

func (fake *FakeMountPointChecker) IsMountPointCallCount() int {
	fake.isMountPointMutex.RLock()
	defer fake.isMountPointMutex.RUnlock()
	return len(fake.isMountPointArgsForCall)
}

func (fake *FakeMountPointChecker) IsMountPointArgsForCall(i int) string {
	fake.isMountPointMutex.RLock()
	defer fake.isMountPointMutex.RUnlock()
	return fake.isMountPointArgsForCall[i].path
}

func (fake *FakeMountPointChecker) IsMountPointReturns(result1 bool, result2 error) {
	fake.IsMountPointStub = nil
	fake.isMountPointReturns = struct {
		result1 bool
		result2 error
	}{result1, result2}
}

var _ system.MountPointChecker = new(FakeMountPointChecker)
