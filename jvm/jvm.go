// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jvm holds the process-wide handle to the hosting Java virtual
// machine and derives the calling thread's JNI environment from it.
//
// The VM handle is recorded exactly once, by the library bootstrap, and read
// many times afterwards. Environments are never cached: each call asks the VM
// for the calling thread's environment, which is only valid on that thread
// for the duration of the caller's use.
package jvm

import (
	"fmt"
	"sync/atomic"

	"github.com/robolectric/nativeruntime/alog"
)

// Version is a JNI protocol version as exchanged between the host, this
// library and its collaborators.
type Version int32

const (
	Version1_1 Version = 0x00010001
	Version1_2 Version = 0x00010002
	Version1_4 Version = 0x00010004
	Version1_6 Version = 0x00010006
)

func (v Version) String() string {
	if v < 0 {
		// Error statuses such as JNI_ERR travel in version slots.
		return fmt.Sprintf("%d", int32(v))
	}
	return fmt.Sprintf("JNI %d.%d", int32(v)>>16, int32(v)&0xffff)
}

// Status is the result code of a JavaVM call.
type Status int32

const (
	OK       Status = 0
	Err      Status = -1
	Detached Status = -2
	EVersion Status = -3
)

func (s Status) String() string {
	switch s {
	case OK:
		return "JNI_OK"
	case Err:
		return "JNI_ERR"
	case Detached:
		return "JNI_EDETACHED"
	case EVersion:
		return "JNI_EVERSION"
	}
	return fmt.Sprintf("Status(%d)", int32(s))
}

// VM is the hosting virtual machine.
type VM interface {
	// GetEnv returns the environment of the calling thread if the thread is
	// attached and the VM supports the requested version.
	GetEnv(version Version) (Env, Status)
}

// Env is a per-thread handle used to call back into the virtual machine. An
// Env must not be used on a thread other than the one that obtained it.
type Env interface {
	// Version returns the JNI version the environment implements.
	Version() Version
	// GetProperty is java.lang.System.getProperty(name, def).
	GetProperty(name, def string) (string, error)
}

const logTag = "NativeRuntime"

// Runtime holds a single VM handle.
type Runtime struct {
	vm atomic.Pointer[VM]
}

var process Runtime

// Process returns the process-wide Runtime.
func Process() *Runtime {
	return &process
}

// SetVM records vm. It may be called once per Runtime, with a non-nil vm;
// anything else terminates the process.
func (r *Runtime) SetVM(vm VM) {
	alog.FatalIf(vm == nil, "vm != nullptr", logTag, func() string {
		return "SetVM called with a nil VM"
	})
	ok := r.vm.CompareAndSwap(nil, &vm)
	alog.FatalIf(!ok, "javaVM == nullptr", logTag, func() string {
		return "SetVM called more than once"
	})
}

// VM returns the recorded VM, or nil if SetVM has not run.
func (r *Runtime) VM() VM {
	if p := r.vm.Load(); p != nil {
		return *p
	}
	return nil
}

// EnvForVersion asks the recorded VM for the calling thread's environment
// at the given version. The VM must have been set.
func (r *Runtime) EnvForVersion(version Version) (Env, Status) {
	vm := r.VM()
	alog.FatalIf(vm == nil, "javaVM != nullptr", logTag, func() string {
		return "no JavaVM recorded; the library was not loaded"
	})
	env, status := vm.GetEnv(version)
	if status != OK {
		return nil, status
	}
	return env, OK
}

// CurrentEnv returns the calling thread's environment, or nil if the thread
// is not attached to the VM. The VM must have been set.
func (r *Runtime) CurrentEnv() Env {
	env, _ := r.EnvForVersion(Version1_4)
	return env
}

// SetVM records the process-wide VM.
func SetVM(vm VM) { process.SetVM(vm) }

// CurrentVM returns the process-wide VM, or nil before SetVM.
func CurrentVM() VM { return process.VM() }

// CurrentEnv returns the calling thread's environment from the process-wide
// VM, or nil if the thread is not attached.
func CurrentEnv() Env { return process.CurrentEnv() }
