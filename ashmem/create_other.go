// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package ashmem

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func create(name string) (int, error) {
	f, err := os.CreateTemp("", "ashmem-"+strings.ReplaceAll(name, "/", "_")+"-")
	if err != nil {
		return -1, ErrInvalidRegion.Errorf(nil, "creating %q: %v", name, err)
	}
	defer f.Close()
	os.Remove(f.Name()) //nolint:errcheck
	// f's descriptor is closed with f; hand out a duplicate.
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return -1, ErrInvalidRegion.Errorf(nil, "dup: %v", err)
	}
	unix.CloseOnExec(fd)
	return fd, nil
}
