// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - value coercion and delivery into the result store.
package option

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-getlong/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorConversion - Wrapped by errors returned when a raw argument can't be converted to the option type.
var ErrorConversion = errors.New("")

// ErrorNotKeyValue - Wrapped by errors returned when a map argument isn't of the form key=value.
var ErrorNotKeyValue = errors.New("")

// Type - Indicates the type of the option value.
type Type int

// Value Types
const (
	BoolType Type = iota
	StringType
	IntType
	Float64Type
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "int"
	case Float64Type:
		return "float64"
	default:
		return "bool"
	}
}

// Convert - Converts the raw argument into the given type.
// The alias is the name used on the command line and is only used for error reporting.
func Convert(t Type, alias, raw string) (interface{}, error) {
	Logger.Printf("convert alias: %s, type: %s, raw: %q\n", alias, t, raw)
	switch t {
	case StringType:
		return raw, nil
	case IntType:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w"+text.ErrorConvertToInt, ErrorConversion, alias, raw)
		}
		return i, nil
	case Float64Type:
		f, err := parseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("%w"+text.ErrorConvertToFloat64, ErrorConversion, alias, raw)
		}
		return f, nil
	default: // BoolType
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w"+text.ErrorConvertToBool, ErrorConversion, alias, raw)
		}
		return b, nil
	}
}

// EmptyValue - The value delivered to an optional argument option called without argument.
func EmptyValue(t Type) interface{} {
	switch t {
	case StringType:
		return ""
	case IntType:
		return 0
	case Float64Type:
		return 0.0
	default:
		return true
	}
}

// IsNumber - Indicates if the raw argument converts to the numeric type.
// Used to accept negative numbers as arguments.
func IsNumber(t Type, raw string) bool {
	switch t {
	case IntType:
		_, err := strconv.Atoi(raw)
		return err == nil
	case Float64Type:
		_, err := parseFloat(raw)
		return err == nil
	}
	return false
}

// parseFloat - Only finite values are accepted.
func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

// SplitKeyValue - Splits a map argument on the first '='.
// The key can't be empty, the value can.
func SplitKeyValue(alias, raw string) (string, string, error) {
	k, v, found := strings.Cut(raw, "=")
	if !found || k == "" {
		return "", "", fmt.Errorf("%w"+text.ErrorArgumentIsNotKeyValue, ErrorNotKeyValue, alias, raw)
	}
	return k, v, nil
}

// Store - Resulting values keyed by option name.
type Store map[string]interface{}

// Set - Overwrites the option value, last call wins.
func (s Store) Set(name string, v interface{}) {
	Logger.Printf("set %s: %v\n", name, v)
	s[name] = v
}

// Append - Appends the value to the option slice, creating it on first use.
func (s Store) Append(name string, v interface{}) {
	Logger.Printf("append %s: %v\n", name, v)
	switch e := v.(type) {
	case string:
		l, _ := s[name].([]string)
		s[name] = append(l, e)
	case int:
		l, _ := s[name].([]int)
		s[name] = append(l, e)
	case float64:
		l, _ := s[name].([]float64)
		s[name] = append(l, e)
	case bool:
		l, _ := s[name].([]bool)
		s[name] = append(l, e)
	default:
		panic(fmt.Sprintf("unsupported value type %T for option '%s'", v, name))
	}
}

// SetKey - Inserts or overwrites the key in the option map, creating it on first use.
func (s Store) SetKey(name, key string, v interface{}) {
	Logger.Printf("set key %s[%s]: %v\n", name, key, v)
	switch e := v.(type) {
	case string:
		m, ok := s[name].(map[string]string)
		if !ok {
			m = map[string]string{}
			s[name] = m
		}
		m[key] = e
	case int:
		m, ok := s[name].(map[string]int)
		if !ok {
			m = map[string]int{}
			s[name] = m
		}
		m[key] = e
	case float64:
		m, ok := s[name].(map[string]float64)
		if !ok {
			m = map[string]float64{}
			s[name] = m
		}
		m[key] = e
	default:
		panic(fmt.Sprintf("unsupported map value type %T for option '%s'", v, name))
	}
}
