// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ashmem provides anonymous shared memory regions to the hosted
// native libraries, following the contract of Android's cutils ashmem API.
//
// Off-device there is no ashmem driver: a region is a memfd (Linux) or an
// unlinked temporary file (other unix systems) that can be mapped and passed
// between processes by descriptor. Pinning is a no-op because the host never
// purges unpinned pages.
package ashmem

import (
	"v.io/v23/verror"
)

// Results of Pin and Unpin.
const (
	NotPurged  = 0
	WasPurged  = 1
	IsUnpinned = 0
	IsPinned   = 1
)

// Protection bits accepted by SetProt.
const (
	ProtNone  = 0x0
	ProtRead  = 0x1
	ProtWrite = 0x2
	ProtExec  = 0x4
)

// DefaultName is used for regions created without a name.
const DefaultName = "dev/ashmem"

// maxNameLen matches ASHMEM_NAME_LEN less the terminator.
const maxNameLen = 255

var (
	ErrInvalidRegion = verror.NewID("InvalidRegion")
	ErrInvalidArg    = verror.NewID("InvalidArg")
	ErrUnsupported   = verror.NewID("Unsupported")
)

// Regions is the shared memory region API. Regions are identified by file
// descriptors owned by the caller.
type Regions interface {
	// Valid reports whether fd refers to a region.
	Valid(fd int) bool
	// Create creates a region of size bytes and returns its descriptor.
	Create(name string, size int) (int, error)
	// SetProt restricts the protections the region may be mapped with.
	SetProt(fd, prot int) error
	// Pin pins [offset, offset+length) and reports whether it was purged
	// while unpinned.
	Pin(fd, offset, length int) (int, error)
	// Unpin allows [offset, offset+length) to be purged.
	Unpin(fd, offset, length int) (int, error)
	// Size returns the size of the region.
	Size(fd int) (int, error)
}

func regionName(name string) string {
	if name == "" {
		name = DefaultName
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return name
}

func checkRange(offset, length int) error {
	if offset < 0 || length < 0 {
		return ErrInvalidArg.Errorf(nil, "invalid range [%d, +%d)", offset, length)
	}
	return nil
}

func checkProt(prot int) error {
	if prot&^(ProtRead|ProtWrite|ProtExec) != 0 {
		return ErrInvalidArg.Errorf(nil, "invalid protection %#x", prot)
	}
	return nil
}
