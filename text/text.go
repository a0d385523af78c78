// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// They are exported variables so applications can replace them, for example
// to translate the diagnostics.
package text

// ErrorUnknownOption holds the text for the unknown option error.
// It has a string placeholder '%s' for the option as given on the command line.
var ErrorUnknownOption = "Unknown option '%s'"

// ErrorAmbiguousArgument holds the text for the ambiguous abbreviation error.
// It has a string placeholder '%s' for the given option and '%v' for the candidate names.
var ErrorAmbiguousArgument = "Ambiguous option '%s', matches %v"

// ErrorMissingArgument holds the text for the missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorArgumentWithDash holds the text for the missing argument error in cases where the next argument looks like an option (starts with '-').
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorArgumentWithDash = "Missing argument for option '%s'!\n" +
	"If passing arguments that start with '-' use --option=-argument"

// ErrorUnexpectedArgument holds the text for a value given to an option that doesn't take one.
var ErrorUnexpectedArgument = "Option '%s' doesn't take an argument, given '%s'"

// ErrorConvertToInt holds the text for the int conversion error.
// It has a string placeholder '%s' for the option alias and '%s' for the raw argument.
var ErrorConvertToInt = "Argument error for option '%s': Can't convert string to int: '%s'"

// ErrorConvertToFloat64 holds the text for the float64 conversion error.
var ErrorConvertToFloat64 = "Argument error for option '%s': Can't convert string to float64: '%s'"

// ErrorConvertToBool holds the text for the bool conversion error.
var ErrorConvertToBool = "Argument error for option '%s': Can't convert string to bool: '%s'"

// ErrorArgumentIsNotKeyValue holds the text for the key=value format error.
var ErrorArgumentIsNotKeyValue = "Argument error for option '%s': Should be of type 'key=value', given '%s'"

// ErrorCallback holds the text for an error returned by an option handler.
var ErrorCallback = "Handler error for option '%s': %s"

// ErrorOperandCallback holds the text for an error returned by the operand handler.
var ErrorOperandCallback = "Handler error for argument '%s': %s"

// ErrorCallbackPanic holds the text for a panic raised by a handler.
var ErrorCallbackPanic = "handler panic: %v"

// Schema definition errors.

// ErrorEmptyName - option definition with an empty name or alias.
var ErrorEmptyName = "Option/Alias name can't be empty"

// ErrorInvalidName - option names can't start with a dash or contain '='.
var ErrorInvalidName = "Option/Alias '%s' is not a valid name"

// ErrorDuplicateName - name defined twice across the schema.
var ErrorDuplicateName = "Option/Alias '%s' is already defined in option '%s'"

// ErrorConflictingDefinition - incompatible arity, type or destination.
var ErrorConflictingDefinition = "Option '%s' definition error: %s"
