// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jvmtest provides an in-memory virtual machine for exercising the
// native runtime without a JVM.
package jvmtest

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/robolectric/nativeruntime/jvm"
)

// VM is a fake jvm.VM. The zero value is not usable; use NewVM.
type VM struct {
	mu        sync.Mutex
	version   jvm.Version
	attached  bool
	props     map[string]string
	propErr   error
	getEnvs   int
	propReads []string
}

// NewVM returns an attached VM that supports JNI versions up to and
// including version.
func NewVM(version jvm.Version) *VM {
	return &VM{
		version:  version,
		attached: true,
		props:    map[string]string{},
	}
}

// SetProperty sets a system property visible through Env.GetProperty.
func (vm *VM) SetProperty(name, value string) *VM {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.props[name] = value
	return vm
}

// FailProperties makes every property read return err.
func (vm *VM) FailProperties(err error) *VM {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.propErr = err
	return vm
}

// Attach attaches the (single, simulated) calling thread.
func (vm *VM) Attach() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.attached = true
}

// Detach detaches the calling thread; GetEnv reports jvm.Detached until
// Attach is called.
func (vm *VM) Detach() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.attached = false
}

// GetEnvCalls returns the number of GetEnv calls made so far.
func (vm *VM) GetEnvCalls() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.getEnvs
}

// PropertyReads returns the names of the properties read so far.
func (vm *VM) PropertyReads() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]string(nil), vm.propReads...)
}

// GetEnv implements jvm.VM.
func (vm *VM) GetEnv(version jvm.Version) (jvm.Env, jvm.Status) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.getEnvs++
	if !vm.attached {
		return nil, jvm.Detached
	}
	if version > vm.version {
		return nil, jvm.EVersion
	}
	return &env{vm: vm, version: version}, jvm.OK
}

type env struct {
	vm      *VM
	version jvm.Version
}

func (e *env) Version() jvm.Version {
	return e.version
}

func (e *env) GetProperty(name, def string) (string, error) {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.vm.propReads = append(e.vm.propReads, name)
	if e.vm.propErr != nil {
		return "", e.vm.propErr
	}
	if v, ok := e.vm.props[name]; ok {
		return v, nil
	}
	return def, nil
}

// Registrars is a fake bootstrap.Registrars that returns fixed versions and
// records the order of calls.
type Registrars struct {
	CursorWindow     jvm.Version
	SQLiteConnection jvm.Version

	mu    sync.Mutex
	calls []string
}

// NewRegistrars returns registrars that both answer version.
func NewRegistrars(version jvm.Version) *Registrars {
	return &Registrars{CursorWindow: version, SQLiteConnection: version}
}

func (r *Registrars) RegisterCursorWindow(env jvm.Env) jvm.Version {
	r.record("CursorWindow", env)
	return r.CursorWindow
}

func (r *Registrars) RegisterSQLiteConnection(env jvm.Env) jvm.Version {
	r.record("SQLiteConnection", env)
	return r.SQLiteConnection
}

func (r *Registrars) record(name string, env jvm.Env) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if env == nil {
		name += "(nil env)"
	}
	r.calls = append(r.calls, name)
}

// Calls returns the registrars invoked so far, in order.
func (r *Registrars) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// LocaleApplier is a fake native locale collaborator. It records the locale
// ids it is given and fails with Err when Err is set.
type LocaleApplier struct {
	Err error

	mu      sync.Mutex
	applied []string
}

func (a *LocaleApplier) ApplyLocale(tag language.Tag) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.applied = append(a.applied, tag.String())
	return a.Err
}

// Applied returns the tags passed to ApplyLocale so far, in order.
func (a *LocaleApplier) Applied() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.applied...)
}
