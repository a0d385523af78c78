// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"fmt"

	"github.com/DavidGamba/go-getlong/internal/option"
)

// OperandName - Name of the definition that receives the operands, see OperandHandler.
const OperandName = "<>"

// Arity - Indicates if an option takes an argument.
type Arity int

// Arities
const (
	ArityNone Arity = iota // Boolean flag

	// ArityRequired - Must have an argument, either inline or the next arg.
	// The next arg is refused when it is `--` or starts with '-' (other than
	// a negative number for numeric options), use `--opt=-value` instead.
	ArityRequired

	// ArityOptional - Argument only if immediately available.
	// Numeric options only take the next arg when it is a number.
	ArityOptional
)

func (a Arity) String() string {
	switch a {
	case ArityRequired:
		return "required"
	case ArityOptional:
		return "optional"
	default:
		return "none"
	}
}

// ValueType - The type the argument is converted to.
type ValueType int

// Value types
const (
	FlagType ValueType = iota
	StringType
	IntType
	FloatType
)

func (t ValueType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "integer"
	case FloatType:
		return "float"
	default:
		return "flag"
	}
}

func (t ValueType) numeric() bool {
	return t == IntType || t == FloatType
}

func (t ValueType) optionType() option.Type {
	switch t {
	case StringType:
		return option.StringType
	case IntType:
		return option.IntType
	case FloatType:
		return option.Float64Type
	default:
		return option.BoolType
	}
}

// Destination - How the values of each occurrence are delivered.
type Destination int

// Destinations
const (
	Scalar   Destination = iota // Last occurrence wins
	List                        // Each occurrence appends
	Map                         // key=value occurrences insert or overwrite the key
	Callback                    // Handler called on each occurrence
)

func (d Destination) String() string {
	switch d {
	case List:
		return "list"
	case Map:
		return "map"
	case Callback:
		return "callback"
	default:
		return "scalar"
	}
}

// Handler - Signature for the function called with the option name and its resolved value.
//
// For the operand handler the name is OperandName and the value is the operand string.
type Handler func(name string, value interface{}) error

// OptionSpec - Definition of an option.
//
// The zero values of Arity, Type and Destination define a scalar flag.
type OptionSpec struct {
	Names       []string // Primary name followed by its aliases
	Arity       Arity
	Type        ValueType
	Destination Destination
	Handler     Handler // Required by the Callback destination
	Negatable   bool    // Flags only, adds the no<name> and no-<name> aliases that set false
}

// Name - Primary name of the option.
func (o OptionSpec) Name() string {
	if len(o.Names) == 0 {
		return ""
	}
	return o.Names[0]
}

// Flag - define a flag option and its aliases.
// The resulting value is `true`, or `false` when called through a negated alias.
func Flag(name string, aliases ...string) OptionSpec {
	return OptionSpec{Names: names(name, aliases), Arity: ArityNone, Type: FlagType}
}

// String - define an option that requires a `string` argument.
func String(name string, aliases ...string) OptionSpec {
	return OptionSpec{Names: names(name, aliases), Arity: ArityRequired, Type: StringType}
}

// Int - define an option that requires an `int` argument.
func Int(name string, aliases ...string) OptionSpec {
	return OptionSpec{Names: names(name, aliases), Arity: ArityRequired, Type: IntType}
}

// Float - define an option that requires a `float64` argument.
func Float(name string, aliases ...string) OptionSpec {
	return OptionSpec{Names: names(name, aliases), Arity: ArityRequired, Type: FloatType}
}

// OperandHandler - define the handler called for every operand, in scan order.
// With Config.PassThrough, unknown options passed to the operands also go to the handler.
func OperandHandler(fn Handler) OptionSpec {
	return OptionSpec{Names: []string{OperandName}, Type: StringType, Destination: Callback, Handler: fn}
}

func names(name string, aliases []string) []string {
	return append([]string{name}, aliases...)
}

// SetAlias - Adds aliases to the option.
func (o OptionSpec) SetAlias(alias ...string) OptionSpec {
	o.Names = append(append([]string{}, o.Names...), alias...)
	return o
}

// SetOptional - The argument is only taken when immediately available.
// When not available the option gets the empty value of its type.
func (o OptionSpec) SetOptional() OptionSpec {
	o.Arity = ArityOptional
	return o
}

// SetList - Every occurrence is appended to a slice.
func (o OptionSpec) SetList() OptionSpec {
	o.Destination = List
	return o
}

// SetMap - Every occurrence is a key=value pair added to a map.
func (o OptionSpec) SetMap() OptionSpec {
	o.Destination = Map
	return o
}

// SetHandler - Every occurrence calls fn instead of storing the value.
func (o OptionSpec) SetHandler(fn Handler) OptionSpec {
	o.Destination = Callback
	o.Handler = fn
	return o
}

// SetNegatable - Adds `no` and `no-` prefixed aliases that set the flag to false.
func (o OptionSpec) SetNegatable() OptionSpec {
	o.Negatable = true
	return o
}

// validate - checks that arity, type and destination are compatible.
func (o OptionSpec) validate() error {
	switch {
	case o.Type == FlagType && o.Arity != ArityNone:
		return fmt.Errorf("flag option can't take an argument (arity %s)", o.Arity)
	case o.Type != FlagType && o.Arity == ArityNone:
		return fmt.Errorf("%s option must take an argument", o.Type)
	case o.Destination == Map && o.Arity != ArityRequired:
		return fmt.Errorf("map option requires arity required, got %s", o.Arity)
	case o.Destination == Callback && o.Handler == nil:
		return fmt.Errorf("callback option requires a handler")
	case o.Destination != Callback && o.Handler != nil:
		return fmt.Errorf("handler given to a %s option", o.Destination)
	case o.Negatable && o.Type != FlagType:
		return fmt.Errorf("only flags can be negatable")
	}
	return nil
}
