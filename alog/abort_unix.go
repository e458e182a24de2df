// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package alog

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// abortExitCode is what a shell reports for a process killed by SIGABRT.
const abortExitCode = 128 + int(unix.SIGABRT)

func abort() {
	unix.Kill(unix.Getpid(), unix.SIGABRT) //nolint:errcheck
	// The signal may land on another thread; don't run the caller's next line.
	time.Sleep(time.Second)
	os.Exit(abortExitCode)
}
