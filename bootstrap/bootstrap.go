// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap implements the load sequence run when the native runtime
// library is loaded into a Java virtual machine.
//
// A Loader moves from Unloaded through Loading to either Ready or Failed. To
// reach Ready it must obtain a JNI 1.4 environment for the loading thread,
// have every registrar echo back JNI 1.4, and then, best effort, install the
// locale named by the language tag system property. A failure in the first
// two steps fails the load; a locale failure is only logged.
package bootstrap

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"v.io/v23/verror"
	"v.io/x/lib/vlog"

	"github.com/robolectric/nativeruntime/alog"
	"github.com/robolectric/nativeruntime/jvm"
	"github.com/robolectric/nativeruntime/locale"
)

const (
	logTag = "NativeRuntime"

	// LanguageTagProperty names the system property holding the locale to
	// install as the native runtime's default.
	LanguageTagProperty = "robolectric.nativeruntime.languageTag"

	// RequiredVersion is the JNI version requested from the VM and expected
	// back from every registrar.
	RequiredVersion = jvm.Version1_4

	// LoadFailed is returned to the host when the library must not be used.
	LoadFailed = jvm.Version(jvm.Err)
)

var (
	ErrGetEnv        = verror.NewID("GetEnv")
	ErrRegistration  = verror.NewID("Registration")
	ErrAlreadyLoaded = verror.NewID("AlreadyLoaded")
	ErrLocale        = verror.NewID("Locale")
)

// State is the position of a Loader in the load sequence.
type State int

const (
	Unloaded State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Registrars bind the native methods of the hosted collaborators. Each
// method must return the JNI version it was built against.
type Registrars interface {
	RegisterCursorWindow(env jvm.Env) jvm.Version
	RegisterSQLiteConnection(env jvm.Env) jvm.Version
}

// LocaleApplier installs a locale as the default of a native collaborator,
// such as ICU. An error means the collaborator rejected the locale.
type LocaleApplier interface {
	ApplyLocale(tag language.Tag) error
}

// Config controls the optional steps of the load sequence.
type Config struct {
	// LanguageTagProperty is the system property read for the default locale.
	LanguageTagProperty string
	// ConfigureLocale enables the locale step.
	ConfigureLocale bool
}

// DefaultConfig returns the configuration used by the shared library.
func DefaultConfig() Config {
	return Config{
		LanguageTagProperty: LanguageTagProperty,
		ConfigureLocale:     true,
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(l *Loader) { l.config = c }
}

// WithRuntime makes the loader record the VM in rt rather than in the
// process-wide runtime.
func WithRuntime(rt *jvm.Runtime) Option {
	return func(l *Loader) { l.runtime = rt }
}

// WithLocale makes the loader install the locale in d rather than in the
// process-wide default.
func WithLocale(d *locale.Default) Option {
	return func(l *Loader) { l.locale = d }
}

// WithLocaleApplier makes the locale step pass each locale to a before
// installing it as the runtime's default.
func WithLocaleApplier(a LocaleApplier) Option {
	return func(l *Loader) { l.applier = a }
}

// Loader runs the load sequence once.
type Loader struct {
	regs    Registrars
	config  Config
	runtime *jvm.Runtime
	locale  *locale.Default
	applier LocaleApplier

	mu     sync.Mutex
	state  State
	err    error
	loadID uuid.UUID
}

// NewLoader returns a loader in the Unloaded state.
func NewLoader(regs Registrars, opts ...Option) *Loader {
	l := &Loader{
		regs:    regs,
		config:  DefaultConfig(),
		runtime: jvm.Process(),
		locale:  locale.Process(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the loader's current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the reason the load failed, or nil.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// LoadID identifies the load in trace output. It is the zero UUID until
// OnLoad runs.
func (l *Loader) LoadID() uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadID
}

// OnLoad runs the load sequence for vm and returns RequiredVersion on success
// or LoadFailed. reserved is the unused second argument of JNI_OnLoad.
func (l *Loader) OnLoad(vm jvm.VM, reserved uintptr) jvm.Version {
	l.mu.Lock()
	if l.state != Unloaded {
		state := l.state
		l.mu.Unlock()
		alog.Printf(alog.Error, logTag, "ERROR: library already loaded (%v)", state)
		vlog.Errorf("%v", ErrAlreadyLoaded.Errorf(nil, "OnLoad called in state %v", state))
		return LoadFailed
	}
	l.state = Loading
	l.loadID = uuid.New()
	l.mu.Unlock()

	vlog.VI(1).Infof("load %v: starting", l.loadID)
	if err := l.load(vm); err != nil {
		l.finish(Failed, err)
		vlog.Errorf("load %v: %v", l.loadID, err)
		return LoadFailed
	}
	l.finish(Ready, nil)
	vlog.VI(1).Infof("load %v: ready", l.loadID)
	return RequiredVersion
}

func (l *Loader) finish(state State, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = state
	l.err = err
}

func (l *Loader) load(vm jvm.VM) error {
	if cur := l.runtime.VM(); cur == nil {
		l.runtime.SetVM(vm)
	} else {
		alog.FatalIf(cur != vm, "javaVM == vm", logTag, func() string {
			return "OnLoad called with a different JavaVM than the one recorded"
		})
	}
	env, status := l.runtime.EnvForVersion(RequiredVersion)
	if status != jvm.OK {
		alog.Print(alog.Error, logTag, "ERROR: GetEnv failed")
		return ErrGetEnv.Errorf(nil, "GetEnv(%v) returned %v", RequiredVersion, status)
	}

	for _, r := range []struct {
		name     string
		register func(jvm.Env) jvm.Version
	}{
		{"CursorWindow", l.regs.RegisterCursorWindow},
		{"SQLiteConnection", l.regs.RegisterSQLiteConnection},
	} {
		if got := r.register(env); got != RequiredVersion {
			alog.Printf(alog.Error, logTag, "ERROR: %s native registration failed", r.name)
			return ErrRegistration.Errorf(nil, "%s registrar returned %v, want %v", r.name, got, RequiredVersion)
		}
		vlog.VI(2).Infof("load %v: registered %s natives", l.loadID, r.name)
	}

	if l.config.ConfigureLocale {
		if err := l.configureLocale(env); err != nil {
			vlog.VI(1).Infof("load %v: %v", l.loadID, err)
		}
	}
	return nil
}

// configureLocale installs the locale named by the language tag property.
// Its errors are reported but never fail the load.
func (l *Loader) configureLocale(env jvm.Env) error {
	name := l.config.LanguageTagProperty
	value, err := env.GetProperty(name, "")
	if err != nil {
		alog.Printf(alog.Warn, logTag, "unable to read %s: %v", name, err)
		return ErrLocale.Errorf(nil, "reading %s: %v", name, err)
	}
	if value == "" {
		return nil
	}
	if err := l.installLocale(value); err != nil {
		alog.Printf(alog.Error, logTag, "unable to set default locale to %q: %v", value, err)
		return ErrLocale.Errorf(nil, "installing %q: %v", value, err)
	}
	return nil
}

func (l *Loader) installLocale(value string) error {
	tag, err := locale.Parse(value)
	if err != nil {
		return err
	}
	if l.applier != nil {
		if err := l.applier.ApplyLocale(tag); err != nil {
			return err
		}
	}
	if err := l.locale.Set(tag); err != nil {
		return err
	}
	vlog.VI(1).Infof("load %v: default locale %v", l.loadID, tag)
	return nil
}
