// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alog implements the leveled logging and fatal assertion facility
// that the native runtime exposes to the native libraries it hosts.
//
// Messages at Info priority or above are written to the facility's output
// (stderr unless replaced with SetOutput) as a single "<tag>: <message>" line;
// lower priorities are dropped. Logging never fails visibly. AssertFail and
// FatalIf write a diagnostic and terminate the process abnormally; they are
// not panics and cannot be recovered.
package alog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Priority is the severity of a log record. Priorities are totally ordered by
// their numeric value.
type Priority int

const (
	Unknown Priority = iota
	Default
	Verbose
	Debug
	Info
	Warn
	Error
	Fatal
	Silent
)

// Threshold is the lowest priority that Print writes.
const Threshold = Info

var priorityNames = [...]string{
	Unknown: "UNKNOWN",
	Default: "DEFAULT",
	Verbose: "VERBOSE",
	Debug:   "DEBUG",
	Info:    "INFO",
	Warn:    "WARN",
	Error:   "ERROR",
	Fatal:   "FATAL",
	Silent:  "SILENT",
}

func (p Priority) String() string {
	if p < 0 || int(p) >= len(priorityNames) {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// Status values returned to native callers.
const (
	// Written is returned by Print and Printf, whether or not the record
	// passed the threshold.
	Written = 1
	// OK is returned by ErrorWrite.
	OK = 0
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput replaces the writer used for log records and returns the previous
// one. Assertion failures always go to stderr as well.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Loggable reports whether a record of the given priority would be written.
func Loggable(prio Priority) bool {
	return prio >= Threshold
}

// Print writes msg under tag if prio is at or above Threshold.
func Print(prio Priority, tag, msg string) int {
	if !Loggable(prio) {
		return Written
	}
	mu.Lock()
	defer mu.Unlock()
	// Errors are dropped: diagnostics must not take down the diagnosed code.
	out.Write(line(tag, msg)) //nolint:errcheck
	return Written
}

// Printf is like Print but formats its arguments with fmt.Sprintf. Arguments
// are only formatted when the record passes the threshold.
func Printf(prio Priority, tag, format string, args ...interface{}) int {
	if !Loggable(prio) {
		return Written
	}
	return Print(prio, tag, fmt.Sprintf(format, args...))
}

// ErrorWrite accepts a structured event for the event log. The host has no
// event log, so the event is discarded.
func ErrorWrite(tag int32, subTag string, uid int32, data []byte) int {
	return OK
}

// AssertFail writes an assertion message naming cond to stderr (and to the
// configured output, if different) and terminates the process. It never
// returns.
func AssertFail(cond, tag, format string, args ...interface{}) {
	msg := "assertion failed: " + cond
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	b := line(tag, msg)
	mu.Lock()
	if out != io.Writer(os.Stderr) {
		out.Write(b) //nolint:errcheck
	}
	os.Stderr.Write(b) //nolint:errcheck
	mu.Unlock()
	abort()
}

// FatalIf terminates the process through AssertFail when cond holds. condText
// is the source form of the condition; msg, which may be nil, is only called
// when the condition holds.
func FatalIf(cond bool, condText, tag string, msg func() string) {
	if !cond {
		return
	}
	if msg == nil {
		AssertFail(condText, tag, "")
		return
	}
	AssertFail(condText, tag, "%s", msg())
}

func line(tag, msg string) []byte {
	var b strings.Builder
	b.Grow(len(tag) + len(msg) + 3)
	b.WriteString(tag)
	b.WriteString(": ")
	b.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
