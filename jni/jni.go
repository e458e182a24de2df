// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build java

// Package jni binds the native runtime to a real Java virtual machine. It
// exports JNI_OnLoad, the Android logging functions and the ashmem functions
// with C linkage, so that the hosted native libraries resolve them against
// this library.
//
// Building requires the JDK headers on the include path, e.g.
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" \
//	  go build -tags java -buildmode=c-shared ./cmd/nativeruntime
package jni

import (
	"unsafe"

	"golang.org/x/text/language"
	"v.io/v23/verror"

	"github.com/robolectric/nativeruntime/jvm"
	"github.com/robolectric/nativeruntime/locale"
)

// #cgo darwin LDFLAGS: -Wl,-undefined,dynamic_lookup
// #include <stdlib.h>
// #include "jni_wrapper.h"
import "C"

var (
	ErrJavaException = verror.NewID("JavaException")
	ErrICU           = verror.NewID("ICU")
)

// VM represents a native *C.JavaVM.
type VM uintptr

// Env represents a native *C.JNIEnv. An Env is only valid on the thread that
// obtained it.
type Env uintptr

func (vm VM) value() *C.JavaVM {
	return (*C.JavaVM)(unsafe.Pointer(vm))
}

func (e Env) value() *C.JNIEnv {
	return (*C.JNIEnv)(unsafe.Pointer(e))
}

// GetEnv implements jvm.VM. Go code reached from a JNI call runs on the
// calling Java thread; other goroutines must lock their OS thread before
// asking for an environment.
func (vm VM) GetEnv(version jvm.Version) (jvm.Env, jvm.Status) {
	var jenv *C.JNIEnv
	if status := jvm.Status(C.GetEnv(vm.value(), &jenv, C.jint(version))); status != jvm.OK {
		return nil, status
	}
	return Env(uintptr(unsafe.Pointer(jenv))), jvm.OK
}

// Version implements jvm.Env.
func (e Env) Version() jvm.Version {
	return jvm.Version(C.GetVersion(e.value()))
}

var (
	cSystemClass     = C.CString("java/lang/System")
	cGetProperty     = C.CString("getProperty")
	cGetPropertySign = C.CString("(Ljava/lang/String;Ljava/lang/String;)Ljava/lang/String;")
)

// GetProperty implements jvm.Env by calling System.getProperty(name, def).
func (e Env) GetProperty(name, def string) (string, error) {
	env := e.value()
	cls := C.FindClass(env, cSystemClass)
	if err := e.exception("FindClass(java/lang/System)"); err != nil {
		return "", err
	}
	defer C.DeleteLocalRef(env, C.jobject(cls))
	mid := C.GetStaticMethodID(env, cls, cGetProperty, cGetPropertySign)
	if err := e.exception("GetStaticMethodID(getProperty)"); err != nil {
		return "", err
	}
	jName, err := e.newString(name)
	if err != nil {
		return "", err
	}
	defer C.DeleteLocalRef(env, C.jobject(jName))
	jDef, err := e.newString(def)
	if err != nil {
		return "", err
	}
	defer C.DeleteLocalRef(env, C.jobject(jDef))

	res := C.CallStaticObjectMethod2(env, cls, mid, C.jobject(jName), C.jobject(jDef))
	if err := e.exception("System.getProperty(" + name + ")"); err != nil {
		return "", err
	}
	if res == nil {
		return def, nil
	}
	defer C.DeleteLocalRef(env, res)
	return e.goString(C.jstring(res)), nil
}

func (e Env) newString(s string) (C.jstring, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	js := C.NewStringUTF(e.value(), cs)
	if err := e.exception("NewStringUTF"); err != nil {
		return nil, err
	}
	return js, nil
}

func (e Env) goString(s C.jstring) string {
	chars := C.GetStringUTFChars(e.value(), s)
	if chars == nil {
		return ""
	}
	defer C.ReleaseStringUTFChars(e.value(), s, chars)
	return C.GoString(chars)
}

// exception clears a pending Java exception and reports it as an error.
func (e Env) exception(op string) error {
	if C.ExceptionCheck(e.value()) == C.JNI_FALSE {
		return nil
	}
	C.ExceptionClear(e.value())
	return ErrJavaException.Errorf(nil, "%s threw", op)
}

// registrars calls the registration functions linked in from the hosted
// libraries.
type registrars struct{}

func (registrars) RegisterCursorWindow(env jvm.Env) jvm.Version {
	e, ok := env.(Env)
	if !ok {
		return 0
	}
	return jvm.Version(C.register_android_database_CursorWindow(e.value()))
}

func (registrars) RegisterSQLiteConnection(env jvm.Env) jvm.Version {
	e, ok := env.(Env)
	if !ok {
		return 0
	}
	return jvm.Version(C.register_android_database_SQLiteConnection(e.value()))
}

// icu installs the default locale in the bundled ICU.
type icu struct{}

func (icu) ApplyLocale(tag language.Tag) error {
	id := C.CString(locale.ID(tag))
	defer C.free(unsafe.Pointer(id))
	if status := C.SetDefaultLocale(id); status > 0 {
		return ErrICU.Errorf(nil, "uloc_setDefault(%s) failed with status %d", locale.ID(tag), int(status))
	}
	return nil
}
