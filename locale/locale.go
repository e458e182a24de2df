// Copyright 2026 The Robolectric Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale holds the default locale of the native runtime.
package locale

import (
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"
	"v.io/v23/verror"
)

var (
	ErrInvalidTag   = verror.NewID("InvalidTag")
	ErrUndetermined = verror.NewID("Undetermined")
)

// Default is a default-locale setting. The zero value reports language.Und
// until Set is called.
type Default struct {
	tag atomic.Pointer[language.Tag]

	// setMu orders installs so that listeners see them in the order they
	// were stored.
	setMu sync.Mutex

	mu        sync.Mutex
	listeners []func(language.Tag)
}

var process Default

// Process returns the native runtime's process-wide default locale.
func Process() *Default {
	return &process
}

// Get returns the current default locale.
func (d *Default) Get() language.Tag {
	if t := d.tag.Load(); t != nil {
		return *t
	}
	return language.Und
}

// Set installs tag as the default locale. language.Und cannot be installed.
// Listeners run before Set returns and must not call Set themselves.
func (d *Default) Set(tag language.Tag) error {
	if tag.IsRoot() {
		return ErrUndetermined.Errorf(nil, "locale %q has no language", tag)
	}
	d.setMu.Lock()
	defer d.setMu.Unlock()
	d.tag.Store(&tag)
	d.mu.Lock()
	listeners := append([]func(language.Tag){}, d.listeners...)
	d.mu.Unlock()
	for _, fn := range listeners {
		fn(tag)
	}
	return nil
}

// SetFromLanguageTag parses s with Parse and installs it. On error the
// current default is left unchanged.
func (d *Default) SetFromLanguageTag(s string) (language.Tag, error) {
	tag, err := Parse(s)
	if err != nil {
		return language.Und, err
	}
	if err := d.Set(tag); err != nil {
		return language.Und, err
	}
	return tag, nil
}

// Parse parses s as a well-formed BCP 47 language tag. Unlike
// language.Parse it rejects ICU-style ids such as "fr_FR", and it rejects
// the undetermined locale with ErrUndetermined.
func Parse(s string) (language.Tag, error) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; !isAlnum(c) && c != '-' {
			return language.Und, ErrInvalidTag.Errorf(nil, "invalid language tag %q: unexpected %q", s, c)
		}
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, ErrInvalidTag.Errorf(nil, "invalid language tag %q: %v", s, err)
	}
	if tag.IsRoot() {
		return language.Und, ErrUndetermined.Errorf(nil, "locale %q has no language", s)
	}
	return tag, nil
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// OnChange registers fn to be called with every newly installed locale.
func (d *Default) OnChange(fn func(language.Tag)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

// ID returns the current default as an ICU locale id, e.g. "fr_FR".
func (d *Default) ID() string {
	return ID(d.Get())
}

// ID converts tag to ICU's locale id form: subtags joined by underscores,
// with the root locale spelled as the empty string.
func ID(tag language.Tag) string {
	if tag.IsRoot() {
		return ""
	}
	return strings.ReplaceAll(tag.String(), "-", "_")
}
