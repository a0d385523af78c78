// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

// Config - Parsing behaviour.
// It is copied into the Parser by New so changes after that have no effect.
//
// The following table shows how a single dash arg is read given the string "-opt=arg".
//
//	.Single dash args for string "-opt=arg"
//	|===
//	|Settings                          |Result
//
//	|default                           |option word: opt
//	                                    argument: arg
//
//	|Bundling                          |option letters: o, p, t
//	                                    the first value taking letter gets the remaining text as argument
//
//	|Bundling + BundlingOverride       |option word: opt when it is defined,
//	                                    otherwise option letters
//
//	|Bundling + AllowSingleDashWords   |option word: opt when 'o' is not a defined letter,
//	                                    otherwise option letters
//	|===
type Config struct {
	// CaseInsensitive - Option words match ignoring case.
	// With Bundling, single character names are always matched exactly.
	CaseInsensitive bool

	// AutoAbbreviate - Unambiguous prefixes of option words are accepted.
	AutoAbbreviate bool

	// Bundling - Single dash args are read as concatenated letters: -abc is -a -b -c.
	Bundling bool

	// BundlingOverride - With Bundling, a single dash arg that exactly matches an option word is read as that word.
	BundlingOverride bool

	// RequireOrder - Stop parsing options at the first operand.
	// By default options and operands can be interleaved.
	RequireOrder bool

	// AllowSingleDashWords - With Bundling, option words can be introduced with a single dash.
	AllowSingleDashWords bool

	// PassThrough - Unknown and ambiguous options are passed to the operands instead of reported.
	PassThrough bool
}

// DefaultConfig - Case insensitive matching and auto abbreviation, every other setting off.
func DefaultConfig() Config {
	return Config{
		CaseInsensitive: true,
		AutoAbbreviate:  true,
	}
}
