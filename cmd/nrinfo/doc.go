// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file was auto-generated via go generate.
// DO NOT UPDATE MANUALLY

/*
Command nrinfo reports how the native runtime resolves on this host and
exercises its load sequence without a Java virtual machine.

Usage:
   nrinfo [flags] <command>

The nrinfo commands are:
   platform    Describes the native library for this host
   locale      Checks language tags
   load        Runs the load sequence against a simulated VM
   help        Display help for commands or topics

Nrinfo platform - Describes the native library for this host

Prints the resource path of the native runtime library and the ICU data file
for the running host and the SDK level given by --sdk.

Usage:
   nrinfo platform [flags]

The nrinfo platform flags are:
 -sdk=35
   Android SDK level to resolve the library for.

Nrinfo locale - Checks language tags

Parses each argument the way the load sequence parses the language tag
property and prints the resulting locale and its ICU id.

Usage:
   nrinfo locale [flags] <tag> ...

<tag> ... BCP 47 language tags, e.g. fr-FR.

Nrinfo load - Runs the load sequence against a simulated VM

Runs the library load sequence against an in-memory virtual machine and prints
the version returned to the host, the final loader state and the default
locale. Diagnostics written by the load sequence go to stderr.

Usage:
   nrinfo load [flags]

The nrinfo load flags are:
 -cursor-window-version=65540
   Version returned by the CursorWindow registrar.
 -language-tag=
   Value of the robolectric.nativeruntime.languageTag system property.
 -sqlite-version=65540
   Version returned by the SQLiteConnection registrar.

Nrinfo help - Display help for commands or topics

Help with no args displays the usage of the parent command.

Help with args displays the usage of the specified sub-command or help topic.

"help ..." recursively displays help for all commands and topics.

Usage:
   nrinfo help [flags] [command/topic ...]

[command/topic ...] optionally identifies a specific sub-command or help topic.
*/
package main
