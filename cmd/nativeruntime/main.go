// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build java

// Command nativeruntime is built with -buildmode=c-shared to produce the
// native runtime library that Robolectric loads into the test JVM.
package main

import (
	_ "github.com/robolectric/nativeruntime/jni"
)

func main() {}
