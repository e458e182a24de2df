// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ashmem

type host struct{}

// Host returns the host implementation of Regions. Windows has no
// descriptor-based shared memory, so every operation fails.
func Host() Regions {
	return host{}
}

func (host) Valid(fd int) bool { return false }

func (host) Create(name string, size int) (int, error) {
	return -1, ErrUnsupported.Errorf(nil, "shared memory regions are not supported on windows")
}

func (host) SetProt(fd, prot int) error {
	return ErrUnsupported.Errorf(nil, "shared memory regions are not supported on windows")
}

func (host) Pin(fd, offset, length int) (int, error) {
	return -1, ErrUnsupported.Errorf(nil, "shared memory regions are not supported on windows")
}

func (host) Unpin(fd, offset, length int) (int, error) {
	return -1, ErrUnsupported.Errorf(nil, "shared memory regions are not supported on windows")
}

func (host) Size(fd int) (int, error) {
	return -1, ErrUnsupported.Errorf(nil, "shared memory regions are not supported on windows")
}
