// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`(?s)^(--?)([^=]+)(=.*)?$`)

type optionToken struct {
	Verbatim string
	Dashes   string // - or --
	Name     string // option text without leading dashes and without =arg
	Arg      string
	HasArg   bool // =arg was given, the argument might still be empty
}

// Letters - Text following the single dash, used to read the arg as bundled letters.
func (t optionToken) Letters() string {
	return strings.TrimPrefix(t.Verbatim, "-")
}

/*
isOption - Check if the given string is an option (starts with - or --).
Return the option without the starting dashes and its argument if the string contained one.

The double dash terminator and the lonesome dash are not options, handling them is the caller's responsibility.
Deciding whether a single dash option is a word or a bundle of letters is also left to the caller since it depends on the definitions.
*/
func isOption(s string) (optionToken, bool) {
	switch s {
	case "--", "-":
		return optionToken{Verbatim: s}, false
	}
	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return optionToken{Verbatim: s}, false
	}
	tok := optionToken{
		Verbatim: s,
		Dashes:   match[1],
		Name:     match[2],
	}
	if match[3] != "" {
		tok.HasArg = true
		tok.Arg = strings.TrimPrefix(match[3], "=")
	}
	return tok, true
}

// looksLikeOption - Used to decide if the next arg can be consumed as an argument.
func looksLikeOption(s string) bool {
	return len(s) > 1 && strings.HasPrefix(s, "-")
}

// 1: leading number in a bundle
var leadingIntRegex = regexp.MustCompile(`^[-+]?[0-9]+`)

var leadingFloatRegex = regexp.MustCompile(`^[-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][-+]?[0-9]+)?`)

// leadingNumber - Returns the numeric prefix of a bundle remainder.
// For example `80L24x` returns `80`.
func leadingNumber(t ValueType, s string) string {
	switch t {
	case IntType:
		return leadingIntRegex.FindString(s)
	case FloatType:
		return leadingFloatRegex.FindString(s)
	}
	return ""
}
