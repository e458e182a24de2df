// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package ashmem

import (
	"golang.org/x/sys/unix"
)

type host struct{}

// Host returns the host implementation of Regions.
func Host() Regions {
	return host{}
}

func (host) Valid(fd int) bool {
	_, err := stat(fd)
	return err == nil
}

func (host) Create(name string, size int) (int, error) {
	if size < 0 {
		return -1, ErrInvalidArg.Errorf(nil, "invalid size %d", size)
	}
	fd, err := create(regionName(name))
	if err != nil {
		return -1, err
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd) //nolint:errcheck
		return -1, ErrInvalidRegion.Errorf(nil, "ftruncate(%d, %d): %v", fd, size, err)
	}
	return fd, nil
}

func (host) SetProt(fd, prot int) error {
	if _, err := stat(fd); err != nil {
		return err
	}
	return checkProt(prot)
}

func (host) Pin(fd, offset, length int) (int, error) {
	if _, err := stat(fd); err != nil {
		return -1, err
	}
	if err := checkRange(offset, length); err != nil {
		return -1, err
	}
	return NotPurged, nil
}

func (host) Unpin(fd, offset, length int) (int, error) {
	if _, err := stat(fd); err != nil {
		return -1, err
	}
	if err := checkRange(offset, length); err != nil {
		return -1, err
	}
	return IsUnpinned, nil
}

func (host) Size(fd int) (int, error) {
	st, err := stat(fd)
	if err != nil {
		return -1, err
	}
	return int(st.Size), nil
}

// stat returns the status of fd if it names a region.
func stat(fd int) (*unix.Stat_t, error) {
	if fd < 0 {
		return nil, ErrInvalidRegion.Errorf(nil, "invalid descriptor %d", fd)
	}
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, ErrInvalidRegion.Errorf(nil, "fstat(%d): %v", fd, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return nil, ErrInvalidRegion.Errorf(nil, "descriptor %d is not a shared memory region", fd)
	}
	return &st, nil
}
