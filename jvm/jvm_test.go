// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jvm_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
	"v.io/x/lib/gosh"

	"github.com/robolectric/nativeruntime/jvm"
	"github.com/robolectric/nativeruntime/jvm/jvmtest"
)

func TestVMBeforeSet(t *testing.T) {
	var rt jvm.Runtime
	if vm := rt.VM(); vm != nil {
		t.Errorf("got %v, want nil", vm)
	}
}

func TestCurrentEnv(t *testing.T) {
	var rt jvm.Runtime
	vm := jvmtest.NewVM(jvm.Version1_6)
	rt.SetVM(vm)
	if got, want := rt.VM(), jvm.VM(vm); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	env := rt.CurrentEnv()
	if env == nil {
		t.Fatalf("got nil env from an attached thread")
	}
	if got, want := env.Version(), jvm.Version1_4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	vm.Detach()
	if env := rt.CurrentEnv(); env != nil {
		t.Errorf("got %v from a detached thread, want nil", env)
	}
	vm.Attach()
	if env := rt.CurrentEnv(); env == nil {
		t.Errorf("got nil env after re-attaching")
	}
	// Each call asks the VM afresh.
	if got, want := vm.GetEnvCalls(), 3; got != want {
		t.Errorf("got %d GetEnv calls, want %d", got, want)
	}
}

func TestEnvForVersion(t *testing.T) {
	var rt jvm.Runtime
	rt.SetVM(jvmtest.NewVM(jvm.Version1_2))
	for _, tc := range []struct {
		version jvm.Version
		status  jvm.Status
	}{
		{jvm.Version1_1, jvm.OK},
		{jvm.Version1_2, jvm.OK},
		{jvm.Version1_4, jvm.EVersion},
		{jvm.Version1_6, jvm.EVersion},
	} {
		env, status := rt.EnvForVersion(tc.version)
		if got, want := status, tc.status; got != want {
			t.Errorf("%v: got %v, want %v", tc.version, got, want)
		}
		if got, want := env == nil, tc.status != jvm.OK; got != want {
			t.Errorf("%v: got nil env %v, want %v", tc.version, got, want)
		}
	}
}

func TestConcurrentCurrentEnv(t *testing.T) {
	var rt jvm.Runtime
	rt.SetVM(jvmtest.NewVM(jvm.Version1_6))
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if rt.CurrentEnv() == nil {
					return fmt.Errorf("nil env on iteration %d", j)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestStrings(t *testing.T) {
	if got, want := jvm.Version1_4.String(), "JNI 1.4"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jvm.Detached.String(), "JNI_EDETACHED"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jvm.Version(jvm.Err).String(), "-1"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

var envBeforeVM = gosh.RegisterFunc("envBeforeVM", func() {
	env := jvm.CurrentEnv()
	fmt.Printf("returned %v\n", env)
})

var setVMTwice = gosh.RegisterFunc("setVMTwice", func() {
	jvm.SetVM(jvmtest.NewVM(jvm.Version1_6))
	fmt.Println("first")
	jvm.SetVM(jvmtest.NewVM(jvm.Version1_6))
	fmt.Println("second")
})

var processWide = gosh.RegisterFunc("processWide", func() {
	fmt.Printf("before: %v\n", jvm.CurrentVM() == nil)
	vm := jvmtest.NewVM(jvm.Version1_6)
	jvm.SetVM(vm)
	fmt.Printf("same: %v\n", jvm.CurrentVM() == jvm.VM(vm) && jvm.Process().VM() == jvm.VM(vm))
	fmt.Printf("attached: %v\n", jvm.CurrentEnv() != nil)
	vm.Detach()
	fmt.Printf("detached: %v\n", jvm.CurrentEnv() == nil)
})

func TestCurrentEnvBeforeSetVM(t *testing.T) {
	sh := gosh.NewShell(t)
	defer sh.Cleanup()
	c := sh.FuncCmd(envBeforeVM)
	c.ExitErrorIsOk = true
	stdout, stderr := c.StdoutStderr()
	if c.Err == nil {
		t.Errorf("child exited normally")
	}
	if strings.Contains(stdout, "returned") {
		t.Errorf("CurrentEnv returned without a VM: %q", stdout)
	}
	if got, want := stderr, "NativeRuntime: assertion failed: javaVM != nullptr"; !strings.Contains(got, want) {
		t.Errorf("got stderr %q, want it to contain %q", got, want)
	}
}

func TestSetVMTwice(t *testing.T) {
	sh := gosh.NewShell(t)
	defer sh.Cleanup()
	c := sh.FuncCmd(setVMTwice)
	c.ExitErrorIsOk = true
	stdout, stderr := c.StdoutStderr()
	if c.Err == nil {
		t.Errorf("child exited normally")
	}
	if got, want := stdout, "first\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := stderr, "SetVM called more than once"; !strings.Contains(got, want) {
		t.Errorf("got stderr %q, want it to contain %q", got, want)
	}
}

func TestProcessWide(t *testing.T) {
	sh := gosh.NewShell(t)
	defer sh.Cleanup()
	got := sh.FuncCmd(processWide).Stdout()
	want := "before: true\nsame: true\nattached: true\ndetached: true\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMain(m *testing.M) {
	gosh.InitMain()
	os.Exit(m.Run())
}
