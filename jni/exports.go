// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build java

package jni

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/text/language"
	"v.io/x/lib/vlog"

	"github.com/robolectric/nativeruntime/alog"
	"github.com/robolectric/nativeruntime/ashmem"
	"github.com/robolectric/nativeruntime/bootstrap"
	"github.com/robolectric/nativeruntime/locale"
)

// #include <stdint.h>
// #include <stdlib.h>
// #include <jni.h>
import "C"

var (
	loader  = bootstrap.NewLoader(registrars{}, bootstrap.WithLocaleApplier(icu{}))
	regions = ashmem.Host()

	// Locale strings handed to native code are never freed; callers may
	// keep the pointer for the life of the process.
	localeID atomic.Pointer[C.char]
)

func init() {
	localeID.Store(C.CString(""))
	locale.Process().OnChange(func(tag language.Tag) {
		localeID.Store(C.CString(locale.ID(tag)))
	})
}

//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	// A test JVM has no log directory.
	vlog.Log.Configure(vlog.OverridePriorConfiguration(true), vlog.LogToStderr(true)) //nolint:errcheck
	return C.jint(loader.OnLoad(VM(uintptr(unsafe.Pointer(vm))), uintptr(reserved)))
}

//export goLogLoggable
func goLogLoggable(prio C.int) C.int {
	if alog.Loggable(alog.Priority(prio)) {
		return 1
	}
	return 0
}

//export goLogWrite
func goLogWrite(prio C.int, tag, msg *C.char) C.int {
	return C.int(alog.Print(alog.Priority(prio), goString(tag), goString(msg)))
}

//export goLogAssert
func goLogAssert(cond, tag, msg *C.char) {
	if msg == nil {
		alog.AssertFail(goString(cond), goString(tag), "")
		return
	}
	alog.AssertFail(goString(cond), goString(tag), "%s", C.GoString(msg))
}

//export goLogErrorWrite
func goLogErrorWrite(tag C.int, subTag *C.char, uid C.int32_t, data *C.char, n C.uint32_t) C.int {
	var b []byte
	if data != nil && n > 0 {
		b = C.GoBytes(unsafe.Pointer(data), C.int(n))
	}
	return C.int(alog.ErrorWrite(int32(tag), goString(subTag), int32(uid), b))
}

//export ashmem_valid
func ashmem_valid(fd C.int) C.int {
	if regions.Valid(int(fd)) {
		return 1
	}
	return 0
}

//export ashmem_create_region
func ashmem_create_region(name *C.char, size C.size_t) C.int {
	fd, err := regions.Create(goString(name), int(size))
	return result(fd, err)
}

//export ashmem_set_prot_region
func ashmem_set_prot_region(fd, prot C.int) C.int {
	return result(0, regions.SetProt(int(fd), int(prot)))
}

//export ashmem_pin_region
func ashmem_pin_region(fd C.int, offset, length C.size_t) C.int {
	r, err := regions.Pin(int(fd), int(offset), int(length))
	return result(r, err)
}

//export ashmem_unpin_region
func ashmem_unpin_region(fd C.int, offset, length C.size_t) C.int {
	r, err := regions.Unpin(int(fd), int(offset), int(length))
	return result(r, err)
}

//export ashmem_get_size_region
func ashmem_get_size_region(fd C.int) C.int {
	size, err := regions.Size(int(fd))
	return result(size, err)
}

//export nativeruntime_default_locale
func nativeruntime_default_locale() *C.char {
	return localeID.Load()
}

func result(r int, err error) C.int {
	if err != nil {
		vlog.VI(2).Infof("ashmem: %v", err)
		return -1
	}
	return C.int(r)
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
