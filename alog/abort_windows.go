// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alog

import "os"

// abort() in the Windows C runtime exits with status 3.
func abort() {
	os.Exit(3)
}
