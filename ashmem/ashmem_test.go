// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package ashmem_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/robolectric/nativeruntime/ashmem"
)

func create(t *testing.T, name string, size int) int {
	fd, err := ashmem.Host().Create(name, size)
	if err != nil {
		t.Fatalf("Create(%q, %d) failed: %v", name, size, err)
	}
	t.Cleanup(func() { unix.Close(fd) })
	return fd
}

func TestCreate(t *testing.T) {
	r := ashmem.Host()
	for _, tc := range []struct {
		name string
		size int
	}{
		{"CursorWindow: /data/test.db", 2 << 20},
		{"", 4096},
		{"empty", 0},
		{strings.Repeat("x", 1000), 1},
	} {
		fd := create(t, tc.name, tc.size)
		if !r.Valid(fd) {
			t.Errorf("%q: Valid(%d) = false", tc.name, fd)
		}
		size, err := r.Size(fd)
		if err != nil {
			t.Errorf("%q: Size failed: %v", tc.name, err)
		}
		if got, want := size, tc.size; got != want {
			t.Errorf("%q: got %d, want %d", tc.name, got, want)
		}
	}
}

func TestCreateNegativeSize(t *testing.T) {
	if _, err := ashmem.Host().Create("neg", -1); !errors.Is(err, ashmem.ErrInvalidArg) {
		t.Errorf("got %v, want %v", err, ashmem.ErrInvalidArg)
	}
}

func TestShared(t *testing.T) {
	const size = 8192
	fd := create(t, "shared", size)
	dup, err := unix.Dup(fd)
	if err != nil {
		t.Fatal(err)
	}
	defer unix.Close(dup)

	w, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		t.Fatalf("Mmap failed: %v", err)
	}
	defer unix.Munmap(w) //nolint:errcheck
	r, err := unix.Mmap(dup, 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		t.Fatalf("Mmap failed: %v", err)
	}
	defer unix.Munmap(r) //nolint:errcheck

	copy(w[size-5:], "hello")
	if got, want := string(r[size-5:]), "hello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvalidDescriptors(t *testing.T) {
	r := ashmem.Host()
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		t.Fatal(err)
	}
	defer unix.Close(p[0])
	defer unix.Close(p[1])

	closed, err := r.Create("closed", 16)
	if err != nil {
		t.Fatal(err)
	}
	unix.Close(closed)

	for _, fd := range []int{-1, p[0], closed} {
		if r.Valid(fd) {
			t.Errorf("Valid(%d) = true", fd)
		}
		if _, err := r.Size(fd); !errors.Is(err, ashmem.ErrInvalidRegion) {
			t.Errorf("Size(%d): got %v, want %v", fd, err, ashmem.ErrInvalidRegion)
		}
		if err := r.SetProt(fd, ashmem.ProtRead); !errors.Is(err, ashmem.ErrInvalidRegion) {
			t.Errorf("SetProt(%d): got %v, want %v", fd, err, ashmem.ErrInvalidRegion)
		}
		if _, err := r.Pin(fd, 0, 0); !errors.Is(err, ashmem.ErrInvalidRegion) {
			t.Errorf("Pin(%d): got %v, want %v", fd, err, ashmem.ErrInvalidRegion)
		}
		if _, err := r.Unpin(fd, 0, 0); !errors.Is(err, ashmem.ErrInvalidRegion) {
			t.Errorf("Unpin(%d): got %v, want %v", fd, err, ashmem.ErrInvalidRegion)
		}
	}
}

func TestSetProt(t *testing.T) {
	r := ashmem.Host()
	fd := create(t, "prot", 4096)
	for _, tc := range []struct {
		prot int
		ok   bool
	}{
		{ashmem.ProtNone, true},
		{ashmem.ProtRead, true},
		{ashmem.ProtRead | ashmem.ProtWrite, true},
		{ashmem.ProtRead | ashmem.ProtWrite | ashmem.ProtExec, true},
		{0x8, false},
	} {
		err := r.SetProt(fd, tc.prot)
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("SetProt(%#x): got %v", tc.prot, err)
		}
	}
}

func TestPinUnpin(t *testing.T) {
	r := ashmem.Host()
	fd := create(t, "pin", 4096)
	if got, err := r.Pin(fd, 0, 4096); err != nil || got != ashmem.NotPurged {
		t.Errorf("Pin: got (%d, %v), want (%d, nil)", got, err, ashmem.NotPurged)
	}
	if got, err := r.Unpin(fd, 1024, 1024); err != nil || got != ashmem.IsUnpinned {
		t.Errorf("Unpin: got (%d, %v), want (%d, nil)", got, err, ashmem.IsUnpinned)
	}
	if _, err := r.Pin(fd, -1, 10); !errors.Is(err, ashmem.ErrInvalidArg) {
		t.Errorf("got %v, want %v", err, ashmem.ErrInvalidArg)
	}
	if _, err := r.Unpin(fd, 0, -10); !errors.Is(err, ashmem.ErrInvalidArg) {
		t.Errorf("got %v, want %v", err, ashmem.ErrInvalidArg)
	}
}
