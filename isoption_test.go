// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"testing"
)

func TestIsOption(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tok  optionToken
		is   bool
	}{
		{"lone dash", "-", optionToken{Verbatim: "-"}, false},
		{"double dash", "--", optionToken{Verbatim: "--"}, false},
		{"no option", "opt", optionToken{Verbatim: "opt"}, false},
		{"empty", "", optionToken{Verbatim: ""}, false},
		{"only arg", "-=arg", optionToken{Verbatim: "-=arg"}, false},

		{"Long option", "--opt", optionToken{Verbatim: "--opt", Dashes: "--", Name: "opt"}, true},
		{"Long option with arg", "--opt=arg", optionToken{Verbatim: "--opt=arg", Dashes: "--", Name: "opt", Arg: "arg", HasArg: true}, true},
		{"Long option with empty arg", "--opt=", optionToken{Verbatim: "--opt=", Dashes: "--", Name: "opt", HasArg: true}, true},
		{"Long option with = in arg", "--opt=a=b", optionToken{Verbatim: "--opt=a=b", Dashes: "--", Name: "opt", Arg: "a=b", HasArg: true}, true},
		{"Long option with newline in arg", "--opt=a\nb", optionToken{Verbatim: "--opt=a\nb", Dashes: "--", Name: "opt", Arg: "a\nb", HasArg: true}, true},

		{"short option", "-opt", optionToken{Verbatim: "-opt", Dashes: "-", Name: "opt"}, true},
		{"short option with arg", "-opt=arg", optionToken{Verbatim: "-opt=arg", Dashes: "-", Name: "opt", Arg: "arg", HasArg: true}, true},
		{"triple dash", "---opt", optionToken{Verbatim: "---opt", Dashes: "--", Name: "-opt"}, true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			buf := setupLogging()
			tok, is := isOption(tt.in)
			if tok != tt.tok || is != tt.is {
				t.Errorf("isOption(%q) == (%+v, %v), want (%+v, %v)", tt.in, tok, is, tt.tok, tt.is)
			}
			t.Log(buf.String())
		})
	}
}

func TestLetters(t *testing.T) {
	tok, _ := isOption("-aw80=x")
	if tok.Letters() != "aw80=x" {
		t.Errorf("wrong letters: %q", tok.Letters())
	}
}

func TestLooksLikeOption(t *testing.T) {
	cases := map[string]bool{
		"-":    false,
		"":     false,
		"a":    false,
		"-a":   true,
		"--":   true,
		"--a":  true,
		"-5":   true,
		"a-b":  false,
		"-a=b": true,
	}
	for in, expected := range cases {
		if got := looksLikeOption(in); got != expected {
			t.Errorf("looksLikeOption(%q) == %v, want %v", in, got, expected)
		}
	}
}

func TestLeadingNumber(t *testing.T) {
	cases := []struct {
		t        ValueType
		in       string
		expected string
	}{
		{IntType, "80L24x", "80"},
		{IntType, "-5x", "-5"},
		{IntType, "+5", "+5"},
		{IntType, "x80", ""},
		{FloatType, "1.5e3x", "1.5e3"},
		{FloatType, "1.5ex", "1.5"},
		{FloatType, ".5a", ".5"},
		{FloatType, "abc", ""},
		{StringType, "80", ""},
	}
	for _, tt := range cases {
		if got := leadingNumber(tt.t, tt.in); got != tt.expected {
			t.Errorf("leadingNumber(%s, %q) == %q, want %q", tt.t, tt.in, got, tt.expected)
		}
	}
}
