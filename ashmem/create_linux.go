// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ashmem

import (
	"golang.org/x/sys/unix"
)

// memfd names are limited to 249 bytes.
const maxMemfdName = 249

func create(name string) (int, error) {
	if len(name) > maxMemfdName {
		name = name[:maxMemfdName]
	}
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return -1, ErrInvalidRegion.Errorf(nil, "memfd_create(%q): %v", name, err)
	}
	return fd, nil
}
