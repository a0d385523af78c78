// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"bytes"
	"testing"
)

func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return buf
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := setupLogging()
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// kinds - Returns the kinds of the result diagnostics for easy comparison.
func kinds(r *Result) []Kind {
	k := []Kind{}
	for _, d := range r.Diagnostics {
		k = append(k, d.Kind)
	}
	return k
}

func cfg(modify ...func(*Config)) Config {
	c := DefaultConfig()
	for _, fn := range modify {
		fn(&c)
	}
	return c
}

func bundling(c *Config)       { c.Bundling = true }
func requireOrder(c *Config)   { c.RequireOrder = true }
func caseSensitive(c *Config)  { c.CaseInsensitive = false }
func noAbbreviate(c *Config)   { c.AutoAbbreviate = false }
func override(c *Config)       { c.BundlingOverride = true }
func singleDashWord(c *Config) { c.AllowSingleDashWords = true }
func passThrough(c *Config)    { c.PassThrough = true }
