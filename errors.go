// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"errors"
)

// ErrorSchema - Indicates an invalid option definition. Raised before parsing starts.
var ErrorSchema = errors.New("schema error")

// ErrorUnknownOption - The given option doesn't match any definition.
var ErrorUnknownOption = errors.New("unknown option")

// ErrorAmbiguousAbbreviation - The given option is a prefix of more than one definition.
var ErrorAmbiguousAbbreviation = errors.New("ambiguous abbreviation")

// ErrorMissingValue - An option that requires an argument didn't get one.
var ErrorMissingValue = errors.New("missing value")

// ErrorTypeCoercion - The argument can't be converted to the option type.
var ErrorTypeCoercion = errors.New("type coercion error")

// ErrorMalformedKeyedValue - A map option got an argument that isn't of the form key=value.
var ErrorMalformedKeyedValue = errors.New("malformed key=value")

// ErrorCallback - An option or operand handler returned an error or panicked.
var ErrorCallback = errors.New("callback error")

// ErrorUnexpectedValue - An option that takes no argument was given one with '='.
var ErrorUnexpectedValue = errors.New("unexpected value")

// Kind - Diagnostic classification.
type Kind int

// Diagnostic kinds
const (
	SchemaError Kind = iota
	UnknownOption
	AmbiguousAbbreviation
	MissingValue
	TypeCoercionError
	MalformedKeyedValue
	CallbackError
	UnexpectedValue
)

func (k Kind) String() string {
	switch k {
	case SchemaError:
		return "SchemaError"
	case UnknownOption:
		return "UnknownOption"
	case AmbiguousAbbreviation:
		return "AmbiguousAbbreviation"
	case MissingValue:
		return "MissingValue"
	case TypeCoercionError:
		return "TypeCoercionError"
	case MalformedKeyedValue:
		return "MalformedKeyedValue"
	case CallbackError:
		return "CallbackError"
	case UnexpectedValue:
		return "UnexpectedValue"
	}
	return "Unknown"
}

// Err - Sentinel error matching the kind.
func (k Kind) Err() error {
	switch k {
	case SchemaError:
		return ErrorSchema
	case UnknownOption:
		return ErrorUnknownOption
	case AmbiguousAbbreviation:
		return ErrorAmbiguousAbbreviation
	case MissingValue:
		return ErrorMissingValue
	case TypeCoercionError:
		return ErrorTypeCoercion
	case MalformedKeyedValue:
		return ErrorMalformedKeyedValue
	case CallbackError:
		return ErrorCallback
	case UnexpectedValue:
		return ErrorUnexpectedValue
	}
	return nil
}

// Diagnostic - A single problem found while compiling the schema or parsing the args.
//
// It implements error. `errors.Is(d, ErrorUnknownOption)` matches on the kind
// and, for callback errors, errors.Is/As reach the error returned by the handler.
type Diagnostic struct {
	Kind    Kind
	Option  string   // Option name or alias involved, as given on the command line
	Token   string   // Verbatim cli arg that triggered the diagnostic
	Names   []string // Conflicting or candidate names for schema and ambiguity errors
	Message string
	Err     error // Underlying error
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// Is - Matches the sentinel of the diagnostic kind.
func (d *Diagnostic) Is(target error) bool {
	return target == d.Kind.Err()
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
