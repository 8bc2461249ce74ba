// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-time configuration shared by the scanner,
// parser and REPL.
package config // import "github.com/firefly431/ucalc/config"

// A Config holds information about the configuration of the system.
// The zero value of a Config holds the default values for all settings,
// and a nil *Config behaves like the zero value: every accessor is safe
// to call on a nil receiver.
type Config struct {
	prompt string
	debug  map[string]bool
}

// Prompt returns the REPL prompt string.
func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

// SetPrompt sets the REPL prompt string.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

// SetDebug sets or clears the named debug flag.
func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}
