// This file was generated by counterfeiter
package fake_target_execer

import (
	"sync"

	"code.cloudfoundry.org/vessel/containerizer"
)

type FakeTargetExecer struct {
	ExecStub        func(command string, argv []string, env []string) error
	execMutex       sync.RWMutex
	execArgsForCall []struct {
		command string
		argv    []string
		env     []string
	}
	execReturns struct {
		result1 error
	}
}

func (fake *FakeTargetExecer) Exec(command string, argv []string, env []string) error {
	fake.execMutex.Lock()
	fake.execArgsForCall = append(fake.execArgsForCall, struct {
		command string
		argv    []string
		env     []string
	}{command, argv, env})
	fake.execMutex.Unlock()
	if fake.ExecStub != nil {
		return fake.ExecStub(command, argv, env)
	} else {
		return fake.execReturns.result1
	}
}

func (fake *FakeTargetExecer) ExecCallCount() int {
	fake.execMutex.RLock()
	defer fake.execMutex.RUnlock()
	return len(fake.execArgsForCall)
}

func (fake *FakeTargetExecer) ExecArgsForCall(i int) (string, []string, []string) {
	fake.execMutex.RLock()
	defer fake.execMutex.RUnlock()
	return fake.execArgsForCall[i].command, fake.execArgsForCall[i].argv, fake.execArgsForCall[i].env
}

func (fake *FakeTargetExecer) ExecReturns(result1 error) {
	fake.ExecStub = nil
	fake.execReturns = struct {
		result1 error
	}{result1}
}

var _ containerizer.TargetExecer = new(FakeTargetExecer)
