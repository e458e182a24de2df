// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform names the native runtime library and its resources for a
// given host platform and Android SDK level.
package platform

import (
	"fmt"
	"runtime"
)

// VanillaIceCream is the first SDK level that ships the android_runtime
// library and ICU 75 data.
const VanillaIceCream = 35

// Info describes where the native runtime for one platform lives.
type Info struct {
	GOOS, GOARCH string
	OS, Arch     string
	Supported    bool
	SDK          int
	Library      string
	LibraryPath  string
	ICUData      string
}

// Current returns the Info for the running host.
func Current(sdk int) Info {
	return For(runtime.GOOS, runtime.GOARCH, sdk)
}

// For returns the Info for goos/goarch at the given SDK level.
func For(goos, goarch string, sdk int) Info {
	return Info{
		GOOS:        goos,
		GOARCH:      goarch,
		OS:          OSName(goos),
		Arch:        Arch(goarch),
		Supported:   IsSupported(goos, goarch),
		SDK:         sdk,
		Library:     LibraryName(goos, sdk),
		LibraryPath: NativeLibraryPath(goos, goarch, sdk),
		ICUData:     ICUDataFile(sdk),
	}
}

// IsSupported reports whether a native runtime is built for goos/goarch.
func IsSupported(goos, goarch string) bool {
	switch goos {
	case "darwin":
		return goarch == "arm64" || goarch == "amd64"
	case "linux", "windows":
		return goarch == "amd64"
	}
	return false
}

// OSName returns the resource directory name for goos.
func OSName(goos string) string {
	switch goos {
	case "linux":
		return "linux"
	case "darwin":
		return "mac"
	case "windows":
		return "windows"
	}
	return "unknown"
}

// Arch returns the resource directory name for goarch.
func Arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	}
	return goarch
}

// LibraryName returns the file name of the native runtime library.
func LibraryName(goos string, sdk int) string {
	if sdk >= VanillaIceCream {
		// hwui looks the library up as libandroid_runtime.dll on windows.
		if goos == "windows" {
			return MapLibraryName(goos, "libandroid_runtime")
		}
		return MapLibraryName(goos, "android_runtime")
	}
	return MapLibraryName(goos, "robolectric-nativeruntime")
}

// MapLibraryName maps a library base name to a platform file name, as
// System.mapLibraryName does.
func MapLibraryName(goos, name string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin":
		return "lib" + name + ".dylib"
	}
	return "lib" + name + ".so"
}

// NativeLibraryPath returns the resource path of the library.
func NativeLibraryPath(goos, goarch string, sdk int) string {
	return fmt.Sprintf("native/%s/%s/%s", OSName(goos), Arch(goarch), LibraryName(goos, sdk))
}

// ICUDataFile returns the ICU data file the runtime loads at sdk.
func ICUDataFile(sdk int) string {
	if sdk >= VanillaIceCream {
		return "icudt75l.dat"
	}
	return "icudt68l.dat"
}
