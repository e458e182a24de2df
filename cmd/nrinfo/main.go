// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The following enables go generate to generate the doc.go file.
//go:generate go run v.io/x/lib/cmdline/gendoc .

package main

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	"github.com/robolectric/nativeruntime/alog"
	"github.com/robolectric/nativeruntime/bootstrap"
	"github.com/robolectric/nativeruntime/jvm"
	"github.com/robolectric/nativeruntime/jvm/jvmtest"
	"github.com/robolectric/nativeruntime/locale"
	"github.com/robolectric/nativeruntime/platform"
)

var (
	flagSDK                 int
	flagLanguageTag         string
	flagCursorWindowVersion int
	flagSQLiteVersion       int
)

func init() {
	// Traces from the load sequence go to stderr rather than log files.
	vlog.Log.Configure(vlog.OverridePriorConfiguration(true), vlog.LogToStderr(true)) //nolint:errcheck

	cmdPlatform.Flags.IntVar(&flagSDK, "sdk", platform.VanillaIceCream, "Android SDK level to resolve the library for.")
	cmdLoad.Flags.StringVar(&flagLanguageTag, "language-tag", "", "Value of the "+bootstrap.LanguageTagProperty+" system property.")
	cmdLoad.Flags.IntVar(&flagCursorWindowVersion, "cursor-window-version", int(bootstrap.RequiredVersion), "Version returned by the CursorWindow registrar.")
	cmdLoad.Flags.IntVar(&flagSQLiteVersion, "sqlite-version", int(bootstrap.RequiredVersion), "Version returned by the SQLiteConnection registrar.")
}

func main() {
	cmdline.Main(cmdRoot)
}

var cmdRoot = &cmdline.Command{
	Name:  "nrinfo",
	Short: "inspects the native runtime",
	Long: `
Command nrinfo reports how the native runtime resolves on this host and
exercises its load sequence without a Java virtual machine.
`,
	Children: []*cmdline.Command{cmdPlatform, cmdLocale, cmdLoad},
}

var cmdPlatform = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runPlatform),
	Name:   "platform",
	Short:  "Describes the native library for this host",
	Long: `
Prints the resource path of the native runtime library and the ICU data file
for the running host and the SDK level given by --sdk.
`,
}

var cmdLocale = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runLocale),
	Name:   "locale",
	Short:  "Checks language tags",
	Long: `
Parses each argument the way the load sequence parses the language tag
property and prints the resulting locale and its ICU id.
`,
	ArgsName: "<tag> ...",
	ArgsLong: "<tag> ... BCP 47 language tags, e.g. fr-FR.",
}

var cmdLoad = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runLoad),
	Name:   "load",
	Short:  "Runs the load sequence against a simulated VM",
	Long: `
Runs the library load sequence against an in-memory virtual machine and
prints the version returned to the host, the final loader state and the
default locale. Diagnostics written by the load sequence go to stderr.
`,
}

func runPlatform(env *cmdline.Env, _ []string) error {
	info := platform.Current(flagSDK)
	fmt.Fprintf(env.Stdout, "os: %s (%s)\n", info.OS, info.GOOS)
	fmt.Fprintf(env.Stdout, "arch: %s (%s)\n", info.Arch, info.GOARCH)
	if arch, err := host.KernelArch(); err == nil {
		fmt.Fprintf(env.Stdout, "kernel arch: %s\n", arch)
	}
	if hi, err := host.Info(); err == nil {
		fmt.Fprintf(env.Stdout, "host: %s %s (kernel %s)\n", hi.Platform, hi.PlatformVersion, hi.KernelVersion)
	}
	fmt.Fprintf(env.Stdout, "cpus: %d\n", runtime.NumCPU())
	fmt.Fprintf(env.Stdout, "sdk: %d\n", info.SDK)
	fmt.Fprintf(env.Stdout, "supported: %v\n", info.Supported)
	fmt.Fprintf(env.Stdout, "library: %s\n", info.Library)
	fmt.Fprintf(env.Stdout, "resource: %s\n", info.LibraryPath)
	fmt.Fprintf(env.Stdout, "icu data: %s\n", info.ICUData)
	return nil
}

func runLocale(env *cmdline.Env, args []string) error {
	if len(args) == 0 {
		return env.UsageErrorf("locale requires at least one argument")
	}
	var lastErr error
	for _, arg := range args {
		var d locale.Default
		tag, err := d.SetFromLanguageTag(arg)
		if err != nil {
			fmt.Fprintf(env.Stdout, "%q: %v\n", arg, err)
			lastErr = err
			continue
		}
		fmt.Fprintf(env.Stdout, "%q: %v (%s)\n", arg, tag, locale.ID(tag))
	}
	return lastErr
}

func runLoad(env *cmdline.Env, _ []string) error {
	prev := alog.SetOutput(env.Stderr)
	defer alog.SetOutput(prev)

	vm := jvmtest.NewVM(jvm.Version1_6)
	if flagLanguageTag != "" {
		vm.SetProperty(bootstrap.LanguageTagProperty, flagLanguageTag)
	}
	regs := &jvmtest.Registrars{
		CursorWindow:     jvm.Version(flagCursorWindowVersion),
		SQLiteConnection: jvm.Version(flagSQLiteVersion),
	}
	var (
		rt  jvm.Runtime
		def locale.Default
	)
	l := bootstrap.NewLoader(regs, bootstrap.WithRuntime(&rt), bootstrap.WithLocale(&def))
	v := l.OnLoad(vm, 0)

	fmt.Fprintf(env.Stdout, "result: %v\n", v)
	fmt.Fprintf(env.Stdout, "state: %v\n", l.State())
	if err := l.Err(); err != nil {
		fmt.Fprintf(env.Stdout, "error: %v\n", err)
	}
	fmt.Fprintf(env.Stdout, "locale: %v (%q)\n", def.Get(), def.ID())
	return nil
}
